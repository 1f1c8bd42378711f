package repository

import (
	"context"
	"errors"
	"time"

	"collab-server/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeamRepository struct {
	teams       *mongo.Collection
	memberships *mongo.Collection
}

func NewTeamRepository(teams, memberships *mongo.Collection) *TeamRepository {
	return &TeamRepository{teams: teams, memberships: memberships}
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	team.CreatedAt = time.Now()
	if _, err := r.teams.InsertOne(ctx, team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (r *TeamRepository) FindTeamByID(ctx context.Context, id string) (models.Team, error) {
	var team models.Team
	err := r.teams.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Team{}, ErrNotFound
	}
	return team, err
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id string) error {
	res, err := r.teams.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamRepository) CreateMembership(ctx context.Context, m models.TeamMembership) (models.TeamMembership, error) {
	filter := bson.M{"user_id": m.UserID, "team_id": m.TeamID}
	err := r.memberships.FindOne(ctx, filter).Err()
	if err == nil {
		return models.TeamMembership{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMembership{}, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	if _, err := r.memberships.InsertOne(ctx, m); err != nil {
		return models.TeamMembership{}, err
	}
	return m, nil
}

func (r *TeamRepository) FindMembership(ctx context.Context, userID, teamID string) (models.TeamMembership, error) {
	var m models.TeamMembership
	err := r.memberships.FindOne(ctx, bson.M{"user_id": userID, "team_id": teamID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMembership{}, ErrNotFound
	}
	return m, err
}

func (r *TeamRepository) ListMembershipsByTeam(ctx context.Context, teamID string) ([]models.TeamMembership, error) {
	return r.listMemberships(ctx, bson.M{"team_id": teamID})
}

func (r *TeamRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]models.TeamMembership, error) {
	return r.listMemberships(ctx, bson.M{"user_id": userID})
}

func (r *TeamRepository) listMemberships(ctx context.Context, filter bson.M) ([]models.TeamMembership, error) {
	cursor, err := r.memberships.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var result []models.TeamMembership
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TeamRepository) DeleteMembership(ctx context.Context, userID, teamID string) error {
	res, err := r.memberships.DeleteOne(ctx, bson.M{"user_id": userID, "team_id": teamID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamRepository) DeleteMembershipsByTeam(ctx context.Context, teamID string) error {
	_, err := r.memberships.DeleteMany(ctx, bson.M{"team_id": teamID})
	return err
}

func (r *TeamRepository) IncrementAccessCount(ctx context.Context, userID, teamID string) error {
	filter := bson.M{"user_id": userID, "team_id": teamID}
	res, err := r.memberships.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"access_count": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"collab-server/models"
)

// MemStore is a thread-safe in-memory Store used by tests. WithTransaction
// snapshots the whole dataset up front and restores it when the callback
// fails, which gives tests the same all-or-nothing visibility the mongo
// store gets from sessions. FailOn arms a one-shot error for a named write
// so transaction rollback paths can be exercised.
type MemStore struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data *memData

	failpoints map[string]error
	seq        int64
}

type memData struct {
	users              map[string]models.User
	teams              map[string]models.Team
	teamMemberships    map[string]models.TeamMembership
	projects           map[string]models.Project
	projectMemberships map[string]models.ProjectMembership
	bulletinBoards     map[string]models.BulletinBoard
	taskBoards         map[string]models.TaskBoard
	tasks              map[string]models.Task
	subtasks           map[string]models.Subtask
	assignments        map[string]models.Assignment
	bulletins          map[string]models.Bulletin
	bulletinFeeds      map[string]models.BulletinFeed
	taskFeeds          map[string]models.TaskFeed
	memoCollections    map[string]models.MemoCollection
	memos              map[string]models.Memo
}

func newMemData() *memData {
	return &memData{
		users:              make(map[string]models.User),
		teams:              make(map[string]models.Team),
		teamMemberships:    make(map[string]models.TeamMembership),
		projects:           make(map[string]models.Project),
		projectMemberships: make(map[string]models.ProjectMembership),
		bulletinBoards:     make(map[string]models.BulletinBoard),
		taskBoards:         make(map[string]models.TaskBoard),
		tasks:              make(map[string]models.Task),
		subtasks:           make(map[string]models.Subtask),
		assignments:        make(map[string]models.Assignment),
		bulletins:          make(map[string]models.Bulletin),
		bulletinFeeds:      make(map[string]models.BulletinFeed),
		taskFeeds:          make(map[string]models.TaskFeed),
		memoCollections:    make(map[string]models.MemoCollection),
		memos:              make(map[string]models.Memo),
	}
}

func (d *memData) clone() *memData {
	c := newMemData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.teams {
		c.teams[k] = v
	}
	for k, v := range d.teamMemberships {
		c.teamMemberships[k] = v
	}
	for k, v := range d.projects {
		c.projects[k] = v
	}
	for k, v := range d.projectMemberships {
		c.projectMemberships[k] = v
	}
	for k, v := range d.bulletinBoards {
		c.bulletinBoards[k] = v
	}
	for k, v := range d.taskBoards {
		c.taskBoards[k] = v
	}
	for k, v := range d.tasks {
		c.tasks[k] = v
	}
	for k, v := range d.subtasks {
		c.subtasks[k] = v
	}
	for k, v := range d.assignments {
		c.assignments[k] = v
	}
	for k, v := range d.bulletins {
		c.bulletins[k] = v
	}
	for k, v := range d.bulletinFeeds {
		c.bulletinFeeds[k] = v
	}
	for k, v := range d.taskFeeds {
		c.taskFeeds[k] = v
	}
	for k, v := range d.memoCollections {
		c.memoCollections[k] = v
	}
	for k, v := range d.memos {
		c.memos[k] = v
	}
	return c
}

func NewMemStore() *MemStore {
	return &MemStore{
		data:       newMemData(),
		failpoints: make(map[string]error),
		seq:        1,
	}
}

func (m *MemStore) Users() UserRepositoryInterface         { return &memUsers{m} }
func (m *MemStore) Teams() TeamRepositoryInterface         { return &memTeams{m} }
func (m *MemStore) Projects() ProjectRepositoryInterface   { return &memProjects{m} }
func (m *MemStore) Tasks() TaskRepositoryInterface         { return &memTasks{m} }
func (m *MemStore) Bulletins() BulletinRepositoryInterface { return &memBulletins{m} }
func (m *MemStore) Feeds() FeedRepositoryInterface         { return &memFeeds{m} }
func (m *MemStore) Memos() MemoRepositoryInterface         { return &memMemos{m} }

func (m *MemStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := m.data.clone()
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.data = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

// FailOn arms a one-shot failure for a named write, e.g.
// "memos.CreateCollection". The error fires on the next matching call and
// is cleared afterwards.
func (m *MemStore) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failpoints[op] = err
}

func (m *MemStore) trip(op string) error {
	if err, ok := m.failpoints[op]; ok {
		delete(m.failpoints, op)
		return err
	}
	return nil
}

func (m *MemStore) nextID() string {
	id := m.seq
	m.seq++
	return fmt.Sprintf("%d", id)
}

// Users ----------------------------------------------------------------------

type memUsers struct{ s *MemStore }

func (r *memUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("users.CreateUser"); err != nil {
		return models.User{}, err
	}
	for _, u := range r.s.data.users {
		if u.Email == user.Email {
			return models.User{}, ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = r.s.nextID()
	}
	user.CreatedAt = time.Now()
	r.s.data.users[user.ID] = user
	return user, nil
}

func (r *memUsers) FindUserByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.data.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Teams ----------------------------------------------------------------------

type memTeams struct{ s *MemStore }

func (r *memTeams) CreateTeam(_ context.Context, team models.Team) (models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("teams.CreateTeam"); err != nil {
		return models.Team{}, err
	}
	if team.ID == "" {
		team.ID = r.s.nextID()
	}
	team.CreatedAt = time.Now()
	r.s.data.teams[team.ID] = team
	return team, nil
}

func (r *memTeams) FindTeamByID(_ context.Context, id string) (models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	team, ok := r.s.data.teams[id]
	if !ok {
		return models.Team{}, ErrNotFound
	}
	return team, nil
}

func (r *memTeams) DeleteTeam(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("teams.DeleteTeam"); err != nil {
		return err
	}
	if _, ok := r.s.data.teams[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.teams, id)
	return nil
}

func (r *memTeams) CreateMembership(_ context.Context, m models.TeamMembership) (models.TeamMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("teams.CreateMembership"); err != nil {
		return models.TeamMembership{}, err
	}
	for _, existing := range r.s.data.teamMemberships {
		if existing.UserID == m.UserID && existing.TeamID == m.TeamID {
			return models.TeamMembership{}, ErrDuplicate
		}
	}
	if m.ID == "" {
		m.ID = r.s.nextID()
	}
	m.CreatedAt = time.Now()
	r.s.data.teamMemberships[m.ID] = m
	return m, nil
}

func (r *memTeams) FindMembership(_ context.Context, userID, teamID string) (models.TeamMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.data.teamMemberships {
		if m.UserID == userID && m.TeamID == teamID {
			return m, nil
		}
	}
	return models.TeamMembership{}, ErrNotFound
}

func (r *memTeams) ListMembershipsByTeam(_ context.Context, teamID string) ([]models.TeamMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.TeamMembership
	for _, m := range r.s.data.teamMemberships {
		if m.TeamID == teamID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memTeams) ListMembershipsByUser(_ context.Context, userID string) ([]models.TeamMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.TeamMembership
	for _, m := range r.s.data.teamMemberships {
		if m.UserID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memTeams) DeleteMembership(_ context.Context, userID, teamID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("teams.DeleteMembership"); err != nil {
		return err
	}
	for id, m := range r.s.data.teamMemberships {
		if m.UserID == userID && m.TeamID == teamID {
			delete(r.s.data.teamMemberships, id)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memTeams) DeleteMembershipsByTeam(_ context.Context, teamID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.data.teamMemberships {
		if m.TeamID == teamID {
			delete(r.s.data.teamMemberships, id)
		}
	}
	return nil
}

func (r *memTeams) IncrementAccessCount(_ context.Context, userID, teamID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.data.teamMemberships {
		if m.UserID == userID && m.TeamID == teamID {
			m.AccessCount++
			r.s.data.teamMemberships[id] = m
			return nil
		}
	}
	return ErrNotFound
}

// Projects -------------------------------------------------------------------

type memProjects struct{ s *MemStore }

func (r *memProjects) CreateProject(_ context.Context, p models.Project) (models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.CreateProject"); err != nil {
		return models.Project{}, err
	}
	if p.ID == "" {
		p.ID = r.s.nextID()
	}
	p.CreatedAt = time.Now()
	r.s.data.projects[p.ID] = p
	return p, nil
}

func (r *memProjects) FindProjectByID(_ context.Context, id string) (models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.data.projects[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	return p, nil
}

func (r *memProjects) ListProjectsByTeam(_ context.Context, teamID string) ([]models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Project
	for _, p := range r.s.data.projects {
		if p.TeamID == teamID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memProjects) UpdateProjectAdmin(_ context.Context, projectID, adminID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.UpdateProjectAdmin"); err != nil {
		return err
	}
	p, ok := r.s.data.projects[projectID]
	if !ok {
		return ErrNotFound
	}
	p.AdminID = adminID
	r.s.data.projects[projectID] = p
	return nil
}

func (r *memProjects) DeleteProject(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.DeleteProject"); err != nil {
		return err
	}
	if _, ok := r.s.data.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.projects, id)
	return nil
}

func (r *memProjects) CreateMembership(_ context.Context, m models.ProjectMembership) (models.ProjectMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.CreateMembership"); err != nil {
		return models.ProjectMembership{}, err
	}
	for _, existing := range r.s.data.projectMemberships {
		if existing.UserID == m.UserID && existing.ProjectID == m.ProjectID {
			return models.ProjectMembership{}, ErrDuplicate
		}
	}
	if m.ID == "" {
		m.ID = r.s.nextID()
	}
	m.CreatedAt = time.Now()
	r.s.data.projectMemberships[m.ID] = m
	return m, nil
}

func (r *memProjects) FindMembership(_ context.Context, userID, projectID string) (models.ProjectMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.data.projectMemberships {
		if m.UserID == userID && m.ProjectID == projectID {
			return m, nil
		}
	}
	return models.ProjectMembership{}, ErrNotFound
}

func (r *memProjects) ListMembershipsByProject(_ context.Context, projectID string) ([]models.ProjectMembership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.ProjectMembership
	for _, m := range r.s.data.projectMemberships {
		if m.ProjectID == projectID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memProjects) DeleteMembership(_ context.Context, userID, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.DeleteMembership"); err != nil {
		return err
	}
	for id, m := range r.s.data.projectMemberships {
		if m.UserID == userID && m.ProjectID == projectID {
			delete(r.s.data.projectMemberships, id)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memProjects) DeleteMembershipsByProject(_ context.Context, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.data.projectMemberships {
		if m.ProjectID == projectID {
			delete(r.s.data.projectMemberships, id)
		}
	}
	return nil
}

func (r *memProjects) CreateBulletinBoard(_ context.Context, b models.BulletinBoard) (models.BulletinBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.CreateBulletinBoard"); err != nil {
		return models.BulletinBoard{}, err
	}
	if b.ID == "" {
		b.ID = r.s.nextID()
	}
	r.s.data.bulletinBoards[b.ID] = b
	return b, nil
}

func (r *memProjects) CreateTaskBoard(_ context.Context, b models.TaskBoard) (models.TaskBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("projects.CreateTaskBoard"); err != nil {
		return models.TaskBoard{}, err
	}
	if b.ID == "" {
		b.ID = r.s.nextID()
	}
	r.s.data.taskBoards[b.ID] = b
	return b, nil
}

func (r *memProjects) FindBulletinBoardByID(_ context.Context, id string) (models.BulletinBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.data.bulletinBoards[id]
	if !ok {
		return models.BulletinBoard{}, ErrNotFound
	}
	return b, nil
}

func (r *memProjects) FindTaskBoardByID(_ context.Context, id string) (models.TaskBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.data.taskBoards[id]
	if !ok {
		return models.TaskBoard{}, ErrNotFound
	}
	return b, nil
}

func (r *memProjects) FindBulletinBoardByProject(_ context.Context, projectID string) (models.BulletinBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.data.bulletinBoards {
		if b.ProjectID == projectID {
			return b, nil
		}
	}
	return models.BulletinBoard{}, ErrNotFound
}

func (r *memProjects) FindTaskBoardByProject(_ context.Context, projectID string) (models.TaskBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.data.taskBoards {
		if b.ProjectID == projectID {
			return b, nil
		}
	}
	return models.TaskBoard{}, ErrNotFound
}

func (r *memProjects) DeleteBoardsByProject(_ context.Context, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.data.bulletinBoards {
		if b.ProjectID == projectID {
			delete(r.s.data.bulletinBoards, id)
		}
	}
	for id, b := range r.s.data.taskBoards {
		if b.ProjectID == projectID {
			delete(r.s.data.taskBoards, id)
		}
	}
	return nil
}

// Tasks ----------------------------------------------------------------------

type memTasks struct{ s *MemStore }

func (r *memTasks) CreateTask(_ context.Context, t models.Task) (models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.CreateTask"); err != nil {
		return models.Task{}, err
	}
	if t.ID == "" {
		t.ID = r.s.nextID()
	}
	t.CreatedAt = time.Now()
	r.s.data.tasks[t.ID] = t
	return t, nil
}

func (r *memTasks) FindTaskByID(_ context.Context, id string) (models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.data.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	return t, nil
}

func (r *memTasks) ListTasksByBoard(_ context.Context, boardID string) ([]models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Task
	for _, t := range r.s.data.tasks {
		if t.BoardID == boardID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memTasks) ListTasksByLeader(_ context.Context, boardIDs []string, leaderID string) ([]models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	boards := toSet(boardIDs)
	var result []models.Task
	for _, t := range r.s.data.tasks {
		if t.LeaderID == leaderID && boards[t.BoardID] {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *memTasks) ReassignTaskLeaders(_ context.Context, boardIDs []string, fromID, toID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.ReassignTaskLeaders"); err != nil {
		return err
	}
	boards := toSet(boardIDs)
	for id, t := range r.s.data.tasks {
		if t.LeaderID == fromID && boards[t.BoardID] {
			t.LeaderID = toID
			r.s.data.tasks[id] = t
		}
	}
	return nil
}

func (r *memTasks) DeleteTask(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.DeleteTask"); err != nil {
		return err
	}
	if _, ok := r.s.data.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.tasks, id)
	return nil
}

func (r *memTasks) CreateSubtask(_ context.Context, s models.Subtask) (models.Subtask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.CreateSubtask"); err != nil {
		return models.Subtask{}, err
	}
	for _, existing := range r.s.data.subtasks {
		if existing.TaskID == s.TaskID && existing.Title == s.Title {
			return models.Subtask{}, ErrDuplicate
		}
	}
	if s.ID == "" {
		s.ID = r.s.nextID()
	}
	s.CreatedAt = time.Now()
	r.s.data.subtasks[s.ID] = s
	return s, nil
}

func (r *memTasks) ListSubtasksByTask(_ context.Context, taskID string) ([]models.Subtask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Subtask
	for _, s := range r.s.data.subtasks {
		if s.TaskID == taskID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *memTasks) FindSubtask(_ context.Context, taskID, title string) (models.Subtask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.data.subtasks {
		if s.TaskID == taskID && s.Title == title {
			return s, nil
		}
	}
	return models.Subtask{}, ErrNotFound
}

func (r *memTasks) DeleteSubtasksByTask(_ context.Context, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, s := range r.s.data.subtasks {
		if s.TaskID == taskID {
			delete(r.s.data.subtasks, id)
		}
	}
	return nil
}

func (r *memTasks) CreateAssignment(_ context.Context, a models.Assignment) (models.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.CreateAssignment"); err != nil {
		return models.Assignment{}, err
	}
	for _, existing := range r.s.data.assignments {
		if existing.TaskID == a.TaskID && existing.SubtaskTitle == a.SubtaskTitle && existing.UserID == a.UserID {
			return models.Assignment{}, ErrDuplicate
		}
	}
	if a.ID == "" {
		a.ID = r.s.nextID()
	}
	a.CreatedAt = time.Now()
	r.s.data.assignments[a.ID] = a
	return a, nil
}

func (r *memTasks) ListAssignmentsByTask(_ context.Context, taskID string) ([]models.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Assignment
	for _, a := range r.s.data.assignments {
		if a.TaskID == taskID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memTasks) ListAssignmentsByUser(_ context.Context, taskIDs []string, userID string) ([]models.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tasks := toSet(taskIDs)
	var result []models.Assignment
	for _, a := range r.s.data.assignments {
		if a.UserID == userID && tasks[a.TaskID] {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memTasks) ReassignAssignments(_ context.Context, taskIDs []string, fromID, toID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("tasks.ReassignAssignments"); err != nil {
		return err
	}
	tasks := toSet(taskIDs)
	for id, a := range r.s.data.assignments {
		if a.UserID == fromID && tasks[a.TaskID] {
			a.UserID = toID
			r.s.data.assignments[id] = a
		}
	}
	return nil
}

func (r *memTasks) DeleteAssignmentsByTask(_ context.Context, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.data.assignments {
		if a.TaskID == taskID {
			delete(r.s.data.assignments, id)
		}
	}
	return nil
}

// Bulletins ------------------------------------------------------------------

type memBulletins struct{ s *MemStore }

func (r *memBulletins) CreateBulletin(_ context.Context, b models.Bulletin) (models.Bulletin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("bulletins.CreateBulletin"); err != nil {
		return models.Bulletin{}, err
	}
	for _, existing := range r.s.data.bulletins {
		if existing.BoardID == b.BoardID && existing.Title == b.Title {
			return models.Bulletin{}, ErrDuplicate
		}
	}
	if b.ID == "" {
		b.ID = r.s.nextID()
	}
	b.CreatedAt = time.Now()
	r.s.data.bulletins[b.ID] = b
	return b, nil
}

func (r *memBulletins) FindBulletinByID(_ context.Context, id string) (models.Bulletin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.data.bulletins[id]
	if !ok {
		return models.Bulletin{}, ErrNotFound
	}
	return b, nil
}

func (r *memBulletins) ListBulletinsByBoard(_ context.Context, boardID string) ([]models.Bulletin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Bulletin
	for _, b := range r.s.data.bulletins {
		if b.BoardID == boardID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *memBulletins) DeleteBulletin(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("bulletins.DeleteBulletin"); err != nil {
		return err
	}
	if _, ok := r.s.data.bulletins[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.bulletins, id)
	return nil
}

func (r *memBulletins) DeleteBulletinsByBoard(_ context.Context, boardID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.data.bulletins {
		if b.BoardID == boardID {
			delete(r.s.data.bulletins, id)
		}
	}
	return nil
}

// Feeds ----------------------------------------------------------------------

type memFeeds struct{ s *MemStore }

func (r *memFeeds) CreateBulletinFeed(_ context.Context, f models.BulletinFeed) (models.BulletinFeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("feeds.CreateBulletinFeed"); err != nil {
		return models.BulletinFeed{}, err
	}
	for _, existing := range r.s.data.bulletinFeeds {
		if existing.UserID == f.UserID && existing.BulletinID == f.BulletinID {
			return models.BulletinFeed{}, ErrDuplicate
		}
	}
	if f.ID == "" {
		f.ID = r.s.nextID()
	}
	f.CreatedAt = time.Now()
	r.s.data.bulletinFeeds[f.ID] = f
	return f, nil
}

func (r *memFeeds) CreateTaskFeed(_ context.Context, f models.TaskFeed) (models.TaskFeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("feeds.CreateTaskFeed"); err != nil {
		return models.TaskFeed{}, err
	}
	for _, existing := range r.s.data.taskFeeds {
		if existing.UserID == f.UserID && existing.TaskID == f.TaskID {
			return models.TaskFeed{}, ErrDuplicate
		}
	}
	if f.ID == "" {
		f.ID = r.s.nextID()
	}
	f.CreatedAt = time.Now()
	r.s.data.taskFeeds[f.ID] = f
	return f, nil
}

func (r *memFeeds) ListBulletinFeedsByUser(_ context.Context, userID string) ([]models.BulletinFeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.BulletinFeed
	for _, f := range r.s.data.bulletinFeeds {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (r *memFeeds) ListTaskFeedsByUser(_ context.Context, userID string) ([]models.TaskFeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.TaskFeed
	for _, f := range r.s.data.taskFeeds {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (r *memFeeds) DeleteBulletinFeed(_ context.Context, userID, bulletinID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.data.bulletinFeeds {
		if f.UserID == userID && f.BulletinID == bulletinID {
			delete(r.s.data.bulletinFeeds, id)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memFeeds) DeleteTaskFeed(_ context.Context, userID, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.data.taskFeeds {
		if f.UserID == userID && f.TaskID == taskID {
			delete(r.s.data.taskFeeds, id)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memFeeds) DeleteBulletinFeedsByBulletin(_ context.Context, bulletinID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.data.bulletinFeeds {
		if f.BulletinID == bulletinID {
			delete(r.s.data.bulletinFeeds, id)
		}
	}
	return nil
}

func (r *memFeeds) DeleteTaskFeedsByTask(_ context.Context, taskID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, f := range r.s.data.taskFeeds {
		if f.TaskID == taskID {
			delete(r.s.data.taskFeeds, id)
		}
	}
	return nil
}

func (r *memFeeds) DeleteBulletinFeedsForUser(_ context.Context, userID string, bulletinIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	bulletins := toSet(bulletinIDs)
	for id, f := range r.s.data.bulletinFeeds {
		if f.UserID == userID && bulletins[f.BulletinID] {
			delete(r.s.data.bulletinFeeds, id)
		}
	}
	return nil
}

func (r *memFeeds) DeleteTaskFeedsForUser(_ context.Context, userID string, taskIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tasks := toSet(taskIDs)
	for id, f := range r.s.data.taskFeeds {
		if f.UserID == userID && tasks[f.TaskID] {
			delete(r.s.data.taskFeeds, id)
		}
	}
	return nil
}

// Memos ----------------------------------------------------------------------

type memMemos struct{ s *MemStore }

func (r *memMemos) CreateCollection(_ context.Context, c models.MemoCollection) (models.MemoCollection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("memos.CreateCollection"); err != nil {
		return models.MemoCollection{}, err
	}
	if c.ID == "" {
		c.ID = r.s.nextID()
	}
	r.s.data.memoCollections[c.ID] = c
	return c, nil
}

func (r *memMemos) FindCollectionByID(_ context.Context, id string) (models.MemoCollection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.data.memoCollections[id]
	if !ok {
		return models.MemoCollection{}, ErrNotFound
	}
	return c, nil
}

func (r *memMemos) FindCollectionByOwner(_ context.Context, scope, ownerID string) (models.MemoCollection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.data.memoCollections {
		if c.Scope == scope && c.OwnerID == ownerID {
			return c, nil
		}
	}
	return models.MemoCollection{}, ErrNotFound
}

func (r *memMemos) DeleteCollectionByOwner(_ context.Context, scope, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.data.memoCollections {
		if c.Scope == scope && c.OwnerID == ownerID {
			delete(r.s.data.memoCollections, id)
		}
	}
	return nil
}

func (r *memMemos) CreateMemo(_ context.Context, m models.Memo) (models.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.trip("memos.CreateMemo"); err != nil {
		return models.Memo{}, err
	}
	if m.ID == "" {
		m.ID = r.s.nextID()
	}
	m.CreatedAt = time.Now()
	r.s.data.memos[m.ID] = m
	return m, nil
}

func (r *memMemos) FindMemoByID(_ context.Context, id string) (models.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.data.memos[id]
	if !ok {
		return models.Memo{}, ErrNotFound
	}
	return m, nil
}

func (r *memMemos) ListMemosByCollection(_ context.Context, collectionID string) ([]models.Memo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Memo
	for _, m := range r.s.data.memos {
		if m.CollectionID == collectionID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *memMemos) DeleteMemo(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.memos[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.memos, id)
	return nil
}

func (r *memMemos) DeleteMemosByCollection(_ context.Context, collectionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.data.memos {
		if m.CollectionID == collectionID {
			delete(r.s.data.memos, id)
		}
	}
	return nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

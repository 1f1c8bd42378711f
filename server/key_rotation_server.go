package server

import (
	"context"
	"fmt"

	pb "collab-server/pkg/keyrotation"
	"collab-server/utils"

	"github.com/rs/zerolog/log"
)

// KeyRotationNotifyServer applies key-rotation notifications to the public
// key store so new access tokens verify without a restart.
type KeyRotationNotifyServer struct {
	pb.UnimplementedKeyRotationNotifyServiceServer
	store *utils.PublicKeyStore
}

func NewKeyRotationNotifyServer(store *utils.PublicKeyStore) *KeyRotationNotifyServer {
	return &KeyRotationNotifyServer{
		store: store,
	}
}

// NotifyKeyRolled stores the new public key under its kid. The previous key
// stays in the store so tokens signed shortly before the roll keep working
// until they expire.
func (s *KeyRotationNotifyServer) NotifyKeyRolled(ctx context.Context, req *pb.NotifyKeyRolledRequest) (*pb.NotifyKeyRolledResponse, error) {
	log.Info().
		Str("previous_kid", req.GetPreviousKid()).
		Str("current_kid", req.GetCurrentKid()).
		Str("rolled_at", req.GetRolledAt()).
		Msg("received key rotation notification")

	if req.GetCurrentPublicKeyPem() == "" {
		return nil, fmt.Errorf("no public key pem provided")
	}

	if err := s.store.AddOrUpdateKey(req.GetCurrentKid(), req.GetCurrentPublicKeyPem()); err != nil {
		return nil, fmt.Errorf("failed to add/update key in store: %w", err)
	}

	return &pb.NotifyKeyRolledResponse{
		Message: "Public key updated successfully.",
	}, nil
}

package server

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	pb "collab-server/pkg/keyrotation"
	"collab-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestNotifyKeyRolledStoresKey(t *testing.T) {
	store := utils.NewPublicKeyStore()
	srv := NewKeyRotationNotifyServer(store)

	resp, err := srv.NotifyKeyRolled(context.Background(), &pb.NotifyKeyRolledRequest{
		PreviousKid:         "key-1",
		CurrentKid:          "key-2",
		CurrentPublicKeyPem: publicPEM(t),
		RolledAt:            "2026-08-30T00:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetMessage())

	_, err = store.GetKey("key-2")
	assert.NoError(t, err)
}

func TestNotifyKeyRolledRejectsEmptyPEM(t *testing.T) {
	srv := NewKeyRotationNotifyServer(utils.NewPublicKeyStore())
	_, err := srv.NotifyKeyRolled(context.Background(), &pb.NotifyKeyRolledRequest{
		CurrentKid: "key-2",
	})
	assert.Error(t, err)
}

func TestNotifyKeyRolledRejectsGarbagePEM(t *testing.T) {
	srv := NewKeyRotationNotifyServer(utils.NewPublicKeyStore())
	_, err := srv.NotifyKeyRolled(context.Background(), &pb.NotifyKeyRolledRequest{
		CurrentKid:          "key-2",
		CurrentPublicKeyPem: "not a pem",
	})
	assert.Error(t, err)
}

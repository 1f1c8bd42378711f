package server

import (
	"net"

	"google.golang.org/grpc"

	pb "collab-server/pkg/keyrotation"
	"collab-server/utils"

	"github.com/rs/zerolog/log"
)

// RunGRPCServer serves the key-rotation notification endpoint the auth
// server calls after rolling its signing key.
func RunGRPCServer(addr string, store *utils.PublicKeyStore) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s := grpc.NewServer()
	pb.RegisterKeyRotationNotifyServiceServer(s, NewKeyRotationNotifyServer(store))

	log.Info().Str("addr", addr).Msg("starting gRPC server")
	return s.Serve(lis)
}

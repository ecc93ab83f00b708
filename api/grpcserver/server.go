// Package grpcserver adapts the ledger service to gRPC. Handlers only
// convert wire messages and map errors; every instruction outcome still
// travels encrypted over the broadcast topic, so acks carry nothing but
// the assigned offset.
package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"darkpool/api/pb"
	"darkpool/service"
)

// Server adapts LedgerService to gRPC.
type Server struct {
	pb.UnimplementedDarkpoolServer
	svc *service.LedgerService
}

func NewServer(svc *service.LedgerService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.InstructionAck, error) {
	order, err := pb.ToEnvelope(req.GetOrder())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	offset, err := s.svc.SubmitOrder(ctx, order)
	if err != nil {
		return nil, rpcError(err)
	}
	return ack(offset), nil
}

func (s *Server) MatchOrders(
	ctx context.Context,
	req *pb.MatchOrdersRequest,
) (*pb.InstructionAck, error) {
	reply, err := pb.ToPublicKey(req.GetReplyPubkey())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	offset, err := s.svc.MatchOrders(ctx, reply)
	if err != nil {
		return nil, rpcError(err)
	}
	return ack(offset), nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.InstructionAck, error) {
	owner, err := pb.ToEnvelope(req.GetOwner())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	offset, err := s.svc.CancelOrder(ctx, req.GetSlotIndex(), owner)
	if err != nil {
		return nil, rpcError(err)
	}
	return ack(offset), nil
}

// -------------------- Queries --------------------

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.GetDepthRequest,
) (*pb.InstructionAck, error) {
	reply, err := pb.ToPublicKey(req.GetReplyPubkey())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	offset, err := s.svc.GetDepth(ctx, req.GetPriceLevels(), reply)
	if err != nil {
		return nil, rpcError(err)
	}
	return ack(offset), nil
}

func (s *Server) ClusterKey(
	ctx context.Context,
	req *pb.ClusterKeyRequest,
) (*pb.ClusterKeyReply, error) {
	pub := s.svc.ClusterKey()
	return &pb.ClusterKeyReply{Pubkey: pub[:]}, nil
}

// -------------------- Error mapping --------------------

func ack(offset uint64) *pb.InstructionAck {
	return &pb.InstructionAck{Offset: offset, Status: "accepted"}
}

// rpcError maps service errors onto gRPC codes. A rejected instruction
// was journaled and consumed its offset but changed nothing; the caller
// sent something the engine refused, so it maps to InvalidArgument.
// Everything else is a server-side fault.
func rpcError(err error) error {
	switch {
	case errors.Is(err, service.ErrRejected):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

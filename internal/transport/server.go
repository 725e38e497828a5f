package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	pb "sluice/api/proto/v1"
	"sluice/internal/logging"
	"sluice/internal/rewrite"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// streamChunkBytes is the frame size used when relaying stream values.
const streamChunkBytes = 32 << 10

// Server exposes a rewrite.Resolver over gRPC so that engines on other
// hosts can look values up remotely.
type Server struct {
	grpc *grpc.Server
	lis  net.Listener
}

func StartServer(port int, res rewrite.Resolver) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		grpc: grpc.NewServer(),
		lis:  lis,
	}
	pb.RegisterResolverServer(s.grpc, &resolverService{res: res})
	return s, nil
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

func (s *Server) Serve() error {
	logging.L().Info("resolver server listening", "addr", s.Addr())
	return s.grpc.Serve(s.lis)
}

func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

// resolverService adapts a local rewrite.Resolver to the wire service.
type resolverService struct {
	pb.UnimplementedResolverServer
	res rewrite.Resolver
}

func (rs *resolverService) Resolve(ctx context.Context, req *pb.ResolveRequest) (*pb.ResolveResponse, error) {
	val, err := rs.res.Resolve(ctx, req.GetName())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "resolve %q: %v", req.GetName(), err)
	}
	if !val.Found() {
		return &pb.ResolveResponse{Found: false}, nil
	}
	if r := val.Stream(); r != nil {
		// The caller must fetch the bytes via ResolveStream.
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return &pb.ResolveResponse{Found: true, Streaming: true}, nil
	}
	return &pb.ResolveResponse{Found: true, Value: val.Bytes()}, nil
}

func (rs *resolverService) ResolveStream(req *pb.ResolveRequest, stream grpc.ServerStreamingServer[pb.ValueChunk]) error {
	val, err := rs.res.Resolve(stream.Context(), req.GetName())
	if err != nil {
		return status.Errorf(codes.Internal, "resolve %q: %v", req.GetName(), err)
	}
	if !val.Found() {
		return status.Errorf(codes.NotFound, "no value for %q", req.GetName())
	}
	r := val.Stream()
	if r == nil {
		return stream.Send(&pb.ValueChunk{Data: val.Bytes()})
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	buf := make([]byte, streamChunkBytes)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if serr := stream.Send(&pb.ValueChunk{Data: buf[:n]}); serr != nil {
				return serr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return status.Errorf(codes.Internal, "stream %q: %v", req.GetName(), err)
		}
	}
}

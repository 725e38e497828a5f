package transport

import (
	"context"
	"errors"
	"io"

	pb "sluice/api/proto/v1"
	"sluice/internal/rewrite"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client is a rewrite.Resolver backed by a remote resolver service.
type Client struct {
	cc  *grpc.ClientConn
	api pb.ResolverClient
}

func Dial(addr string) (*Client, error) {
	cc, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, api: pb.NewResolverClient(cc)}, nil
}

func (c *Client) Close() error { return c.cc.Close() }

func (c *Client) Resolve(ctx context.Context, name string) (rewrite.Value, error) {
	resp, err := c.api.Resolve(ctx, &pb.ResolveRequest{Name: name})
	if err != nil {
		return rewrite.NotFound, err
	}
	if !resp.GetFound() {
		return rewrite.NotFound, nil
	}
	if !resp.GetStreaming() {
		return rewrite.BytesValue(resp.GetValue()), nil
	}
	sctx, cancel := context.WithCancel(ctx)
	stream, err := c.api.ResolveStream(sctx, &pb.ResolveRequest{Name: name})
	if err != nil {
		cancel()
		return rewrite.NotFound, err
	}
	return rewrite.StreamValue(&chunkReader{stream: stream, cancel: cancel}), nil
}

// chunkReader presents a server stream of value chunks as an io.Reader.
type chunkReader struct {
	stream grpc.ServerStreamingClient[pb.ValueChunk]
	cancel context.CancelFunc
	rest   []byte
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.rest) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		msg, err := r.stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.NotFound {
				r.err = io.EOF
			} else {
				r.err = err
			}
			return 0, r.err
		}
		r.rest = msg.GetData()
	}
	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

func (r *chunkReader) Close() error {
	r.cancel()
	return nil
}

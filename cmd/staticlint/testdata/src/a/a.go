package a

import (
	"context"
	"net"
)

func lookups(ctx context.Context) {
	_, _ = net.LookupHost("example.com")                        // want `direct use of net.LookupHost`
	_, _ = net.LookupIP("example.com")                          // want `direct use of net.LookupIP`
	_, _ = net.DefaultResolver.LookupHost(ctx, "example.com")   // want `direct use of net.DefaultResolver`
	_, _ = net.LookupAddr("127.0.0.1")                          // want `direct use of net.LookupAddr`
	lookup := net.LookupCNAME                                   // want `direct use of net.LookupCNAME`
	_ = lookup

	_ = net.ParseIP("127.0.0.1")
	r := &net.Resolver{}
	_, _ = r.LookupHost(ctx, "example.com")
}

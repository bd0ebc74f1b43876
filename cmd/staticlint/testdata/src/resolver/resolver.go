package resolver

import (
	"context"
	"net"
)

func lookup(ctx context.Context) {
	_, _ = net.DefaultResolver.LookupHost(ctx, "example.com")
	_, _ = net.LookupHost("example.com")
}

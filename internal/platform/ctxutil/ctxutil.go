package ctxutil

import "context"

type requestDataKey struct{}

// RequestData is hydrated by the auth middleware for the lifetime of
// one request.
type RequestData struct {
	UserID       uint
	TokenString  string
	RefreshToken string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

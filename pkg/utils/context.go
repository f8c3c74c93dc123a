package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	AccountTypeKey contextKey = "account_type"
	SessionKey     contextKey = "session_cookie"
)

// SetUserContext stores the authenticated user's identity. A populated
// context is distinct from one the session gate never touched: the gate
// always writes both keys, even for anonymous requests (empty values).
func SetUserContext(ctx context.Context, userID int64, accountType string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, AccountTypeKey, accountType)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	val := ctx.Value(UserIDKey)
	if val == nil {
		return 0, false
	}

	userID, ok := val.(int64)
	if !ok || userID == 0 {
		return 0, false
	}

	return userID, true
}

func GetAccountTypeFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(AccountTypeKey)
	if val == nil {
		return "", false
	}

	accountType, ok := val.(string)
	if !ok || accountType == "" {
		return "", false
	}

	return accountType, ok
}

// SetSessionContext stores the raw marketplace session cookie so the
// upstream client can forward it on every call.
func SetSessionContext(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, SessionKey, cookie)
}

func GetSessionFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(SessionKey)
	if val == nil {
		return "", false
	}

	cookie, ok := val.(string)
	return cookie, ok && cookie != ""
}

package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyClientID  CtxKey = "ClientIdentity"
)

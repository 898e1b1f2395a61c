package responses

type ResourceLimit struct {
	Allowed        bool
	RetryAfterSecs int
}

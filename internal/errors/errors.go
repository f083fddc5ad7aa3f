package gerr

import "errors"

var (
	InvalidConfig = errors.New("invalid configuration")
	QueryFailed   = errors.New("metrics query failed")
	NoData        = errors.New("no data for the reporting period")

	BadMailRequest      = errors.New("bad mail request")
	MailApiLimitReached = errors.New("mail api limit reached")
	SlackNotConfigured  = errors.New("slack notifier is not configured")
)

package email

// Message is a provider-agnostic email message.
type Message struct {
	To  []string
	CC  []string
	BCC []string

	Subject  string
	TextBody string
	HTMLBody string

	Headers map[string]string
}

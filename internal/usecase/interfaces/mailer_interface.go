package interfaces

import "context"

// ProposalMail is one outgoing proposal e-mail with its PDF attached.
type ProposalMail struct {
	To             []string
	CC             []string
	Subject        string
	Body           string
	AttachmentName string
	AttachmentPDF  []byte
}

// IMailer abstracts SMTP delivery of rendered proposals.

type IMailer interface {
	SendProposal(ctx context.Context, m ProposalMail) error
}

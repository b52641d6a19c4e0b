package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Archive SessionsArchiveCmd `cmd:"archive" help:"Back up and remove sessions with their descendants"`
	Create  SessionsCreateCmd  `cmd:"create" aliases:"new" help:"Create a new session"`
	Del     SessionsDelCmd     `cmd:"del" aliases:"rm" help:"Delete sessions with their descendants"`
	Edit    SessionsEditCmd    `cmd:"edit" help:"Change session metadata and hyperparameters"`
	Fork    SessionsForkCmd    `cmd:"fork" help:"Create a child session from the turns before an index"`
	List    SessionsListCmd    `cmd:"list" help:"List all sessions" default:"1"`
	Show    SessionsShowCmd    `cmd:"show" help:"Show a session"`
	Tail    SessionsTailCmd    `cmd:"tail" help:"Follow a session live as it changes"`
	Tree    SessionsTreeCmd    `cmd:"tree" help:"Show sessions arranged by lineage"`
}

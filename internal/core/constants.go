package core

import (
	"os"
	"time"
)

const (
	// PermOwnerRW is used for newly created version and config files.
	PermOwnerRW os.FileMode = 0o600

	// PermPublicRead is used for version files that must stay readable by
	// packaging tools running as other users.
	PermPublicRead os.FileMode = 0o644
)

const (
	// TimeoutGit bounds git subprocesses that may hit the network (push).
	TimeoutGit = 30 * time.Second

	// TimeoutShort bounds local git subprocesses (tag list, tag create, commit).
	TimeoutShort = 10 * time.Second
)

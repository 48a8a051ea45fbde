package sdk

import (
	"fmt"

	"github.com/arthur-debert/sdkman/pkg/errors"
	"github.com/arthur-debert/sdkman/pkg/style"
)

// PrintError writes guidance for err. Expected conditions get their own
// message; anything else is printed as a plain error line.
func PrintError(p *style.Printer, err error) {
	if err == nil {
		return
	}
	if !errors.IsUserFacing(err) {
		p.Error(MsgErrorPrefix, err)
		if errors.IsErrorCode(err, errors.ErrMissingEnv) {
			p.Muted(MsgMissingEnvGuidance)
		}
		return
	}

	candidate := p.S("candidate", errors.DetailString(err, errors.DetailCandidate))
	ver := p.S("version", errors.DetailString(err, errors.DetailVersion))

	switch errors.GetErrorCode(err) {
	case errors.ErrUnresolvableVersion:
		msg := MsgUnresolvable
		if offline, _ := errors.GetErrorDetails(err)[errors.DetailOffline].(bool); offline {
			msg = MsgUnresolvableOffline
		}
		p.Println(fmt.Sprintf(msg, candidate, ver))
	case errors.ErrUnknownCandidate:
		p.Println(fmt.Sprintf(MsgUnknownCandidate, candidate))
	case errors.ErrVersionRequired:
		p.Println(fmt.Sprintf(MsgVersionRequired, candidate))
	case errors.ErrNotInstalled:
		p.Println(fmt.Sprintf(MsgNotInstalled, candidate, ver))
	case errors.ErrAlreadyInstalled:
		p.Info(MsgAlreadyInstalled, candidate, ver)
	case errors.ErrRefusedCurrentRemoval:
		p.Warning("%s", fmt.Sprintf(MsgRefusedRemoval, candidate, ver))
	}
}

// ExitCode maps a command result to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

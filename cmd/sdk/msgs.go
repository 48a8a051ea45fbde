package sdk

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage parallel versions of software development kits"
	MsgInstallShort    = "Resolve and install a candidate version"
	MsgUninstallShort  = "Remove an installed candidate version"
	MsgDefaultShort    = "Set the current version of a candidate"
	MsgCurrentShort    = "Show the current version of candidates"
	MsgListShort       = "List candidates or installed versions"
	MsgListLong        = "Without a candidate, list all known candidates. With one, list its installed versions and mark the current one."
	MsgDoctorShort     = "Check the install root for broken state"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgResolved          = "%s %s resolved (%s)"
	MsgDefaulted         = "Using the default version of %s: %s"
	MsgArchiveNotice     = "Archives are downloaded and extracted by the shell integration."
	MsgAlreadyInstalled  = "%s %s is already installed."
	MsgLinkedLocal       = "Linked %s %s to %s"
	MsgSetDefault        = "Default %s version set to %s"
	MsgRemoved           = "removed %s %s."
	MsgUsing             = "Using %s version %s"
	MsgNotUsing          = "Not using any version of %s"
	MsgNoCandidatesInUse = "No candidates are in use"
	MsgBrokenLink        = "%s: %s (%s)"
	MsgBrokenLinkSkipped = "current link of %s is broken (%s), treating it as absent"
	MsgNoVersions        = "No versions of %s are installed."
	MsgAvailable         = "Available candidates:"
	MsgInstalledLegend   = "* installed   > current   ~ local folder"
	MsgDoctorHealthy     = "No problems found."
	MsgDoctorManifest    = "Candidates manifest: %d candidates"
	MsgDoctorConfig      = "Configuration: %s"
	MsgDoctorFixed       = "Removed broken current link of %s"
	MsgDoctorFixHint     = "Run 'sdk doctor --fix' to remove broken links."
	MsgVersionLine       = "sdk version %s\n  commit: %s\n  built:  %s\n"

	// Guidance for user-facing errors
	MsgUnknownCandidate   = "Stop! %s is not a valid candidate.\n\nTip: see all known candidates:\n\n  $ sdk list"
	MsgVersionRequired    = "Stop! A version of %s must be given when offline."
	MsgNotInstalled       = "Stop! %s %s is not installed."
	MsgErrorPrefix        = "Error: %v"
	MsgMissingEnvGuidance = "Is the sdk shell integration loaded?"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOffline = "Resolve versions from installed state only, without the catalog"
	MsgFlagForce   = "Remove the version even if it is the current one"
	MsgFlagFix     = "Remove broken current links"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/uninstall-example.txt
	msgUninstallExampleRaw string
	MsgUninstallExample    = strings.TrimRight(msgUninstallExampleRaw, "\n")

	//go:embed msgs/default-long.txt
	msgDefaultLongRaw string
	MsgDefaultLong    = strings.TrimSpace(msgDefaultLongRaw)

	//go:embed msgs/doctor-long.txt
	msgDoctorLongRaw string
	MsgDoctorLong    = strings.TrimSpace(msgDoctorLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/unresolvable.txt
	msgUnresolvableRaw string
	MsgUnresolvable    = strings.TrimSpace(msgUnresolvableRaw)

	//go:embed msgs/unresolvable-offline.txt
	msgUnresolvableOfflineRaw string
	MsgUnresolvableOffline    = strings.TrimSpace(msgUnresolvableOfflineRaw)

	//go:embed msgs/refused-removal.txt
	msgRefusedRemovalRaw string
	MsgRefusedRemoval    = strings.TrimSpace(msgRefusedRemovalRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

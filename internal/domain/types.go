package domain

type TargetKind string

const (
	TargetNone         TargetKind = ""
	TargetLocal        TargetKind = "local"
	TargetNetworkShare TargetKind = "network"
	TargetRemoteFolder TargetKind = "remote"
)

// TargetKinds lists the selectable kinds in display order.
var TargetKinds = []TargetKind{TargetLocal, TargetNetworkShare, TargetRemoteFolder}

func (kind TargetKind) Label() string {
	switch kind {
	case TargetLocal:
		return "Local folder"
	case TargetNetworkShare:
		return "Network share (sftp/smb)"
	case TargetRemoteFolder:
		return "Remote service folder"
	default:
		return "None"
	}
}

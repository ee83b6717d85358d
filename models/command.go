// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Command is the logical name of a FileMover service operation.
type Command string

const (
	CommandRequest      Command = "request"
	CommandCancel       Command = "cancel"
	CommandStatus       Command = "status"
	CommandStatusOne    Command = "statusOne"
	CommandRemove       Command = "remove"
	CommandResolveLFN   Command = "resolveLfn"
	CommandGetEvent     Command = "getEvent"
	CommandUnlock       Command = "unlock"
	CommandDBSStatus    Command = "dbsStatus"
	CommandCMSRunStatus Command = "cmsRunStatus"
)

// Commands lists every command the FileMover service understands, in the
// order they are registered.
func Commands() []Command {
	return []Command{
		CommandRequest,
		CommandCancel,
		CommandStatus,
		CommandStatusOne,
		CommandRemove,
		CommandResolveLFN,
		CommandGetEvent,
		CommandUnlock,
		CommandDBSStatus,
		CommandCMSRunStatus,
	}
}

// Params holds the name=value pairs sent with a command.
type Params map[string]string

// LFNParams returns the parameters of a single-LFN command.
func LFNParams(lfn string) Params {
	return Params{"lfn": lfn}
}

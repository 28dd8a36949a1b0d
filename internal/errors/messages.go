package errors

import (
	"fmt"
	"strings"
)

// messages holds the user-facing text per kind. A %s verb, when present,
// receives the error subject.
var messages = map[Kind]string{
	KindEmptyInput:              "Input is empty.",
	KindInvalidComponentPath:    `Invalid component path %q. Expected letters, numbers, spaces, "_", "-", "\", "/" symbols.`,
	KindInvalidFolderName:       `Invalid %s folder name. Expected letters, numbers, ".", "_", "-" symbols.`,
	KindInvalidFileName:         `Invalid %s file name. Expected letters, numbers, ".", "_", "-" symbols.`,
	KindInvalidStylesExtension:  `Invalid styles file extension %q. Expected a dot followed by letters (e.g. .scss).`,
	KindNoWorkspaceFound:        "Can not define workspace folder. No workspace found.",
	KindMultipleWorkspacesFound: "Can not define workspace folder, because several workspaces are configured.",
	KindPathNotFound:            "Invalid input. Entered path %s does not exist.",
	KindFileAlreadyExists:       "File %s already exists.",
	KindFileCreationFailed:      "Can not create file %s.",
	KindDirectoryCreationFailed: "Can not create folder %s.",
	KindInternal:                "Unexpected error.",
}

// Format renders the message for kind, interpolating subject.
func Format(kind Kind, subject string) string {
	tmpl, ok := messages[kind]
	if !ok {
		tmpl = messages[KindInternal]
	}

	if !strings.Contains(tmpl, "%s") && !strings.Contains(tmpl, "%q") {
		return tmpl
	}

	return fmt.Sprintf(tmpl, subject)
}

package smbconf

import (
	"fmt"
	"strings"
)

// RenderShareBlock renders the smb.conf block appended for a new share.
//
// Guest shares allow access without a credential (guest ok) and carry no
// public key; authenticated shares are public but require a Samba account
// (only guest = no). Both are browseable, writeable, and use 0777 masks so
// created files stay accessible to every share user.
func RenderShareBlock(name, path string, guest bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n\n[%s]\n", name)
	fmt.Fprintf(&b, "   path = %s\n", path)
	b.WriteString("   browseable = yes\n")
	b.WriteString("   writeable = yes\n")
	if guest {
		b.WriteString("   guest ok = yes\n")
	} else {
		b.WriteString("   only guest = no\n")
	}
	b.WriteString("   create mask = 0777\n")
	b.WriteString("   directory mask = 0777\n")
	if !guest {
		b.WriteString("   public = yes\n")
	}

	return b.String()
}

// Package registration models the four-screen account registration flow:
// the screen selector, the shared registration draft, the account-creation
// validator and the profile-setup rules.
//
// A Flow is the navigation coordinator. It owns the current Screen and the
// Draft and exposes Navigate and MergeDraft to the screen operations, which
// validate their own input before asking the flow to move forward:
//
//	start -> create -> profile -> success
//
// The flow never moves backwards.
package registration

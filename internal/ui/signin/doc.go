// Package signin implements the signin form composite as a Bubbletea model.
//
// The form is a rendering projection of caller-owned state: the host drives
// the loading flag and error banner (via LoadingMsg/ErrorMsg or the
// SetLoading/SetError methods) while the model owns only its two text-input
// controllers, the password visibility flag, and the remember flag.
// Submitting validates the fields locally and, on success, hands the
// trimmed credentials to the caller's submit callback; the form never
// authenticates, never clears its own fields, and surfaces validation
// failures inline per field.
package signin

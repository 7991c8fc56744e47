// Package clipboard copies formatted output to the system clipboard.
//
// Writer is the only surface callers see. The system implementation shells
// out through github.com/atotto/clipboard (pbcopy, xclip, xsel, wl-copy or the
// Windows API); every failure is reported as an *IoError so callers can react
// uniformly.
package clipboard

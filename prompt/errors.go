package prompt

import "errors"

// ErrExit is returned when the user asks to leave the program from a prompt
var ErrExit = errors.New("exit requested by user")

package console

// ANSI SGR foreground colors.
const (
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
	ansiWhite   = "\x1b[37m"
)

// Reset is written after every emitted flush when color is enabled.
const Reset = ansiWhite

// Tags identifying the leveled streams.
const (
	TagDebug = "(DD) "
	TagInfo  = "(LL) "
	TagError = "(EE) "
)

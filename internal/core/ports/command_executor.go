package ports

// CommandExecutor runs a shell pipeline with the named shell and returns
// its captured output.
type CommandExecutor interface {
	Execute(shellName, pipeline string) (stdout string, stderr string, err error)
}

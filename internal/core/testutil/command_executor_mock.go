package testutil

import "errors"

// ExecuteCall captures the arguments of one Execute invocation.
type ExecuteCall struct {
	ShellName string
	Pipeline  string
}

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc  func(shellName, pipeline string) (stdout string, stderr string, err error)
	ExecuteCalls []ExecuteCall
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, ExecuteCall{ShellName: shellName, Pipeline: pipeline})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

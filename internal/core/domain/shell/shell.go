/*
Package shell defines the shell flavours and profile files the installer
knows how to register an alias in.
*/
package shell

// Flavor identifies a supported interactive shell.
type Flavor string

const (
	Bash Flavor = "bash"
	Zsh  Flavor = "zsh"
)

/*
Profile is a shell startup file sourced by an interactive shell.
Path is absolute.
*/
type Profile struct {
	Shell Flavor
	Path  string
}

// ProfileCandidate pairs a flavour with its profile file name relative to
// the home directory.
type ProfileCandidate struct {
	Shell    Flavor
	FileName string
}

// ProfileCandidates lists the profiles in order of preference: bash first,
// then zsh.
var ProfileCandidates = []ProfileCandidate{
	{Shell: Bash, FileName: ".bashrc"},
	{Shell: Zsh, FileName: ".zshrc"},
}

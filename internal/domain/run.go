package domain

// RunRequest asks the service to execute code inside a container image.
type RunRequest struct {
	Image   string     `json:"image"`
	Payload RunPayload `json:"payload"`
}

// RunPayload carries the code and input for a single run. Stdin and
// Command serialize as null when absent.
type RunPayload struct {
	Language string    `json:"language"`
	Files    []RunFile `json:"files"`
	Stdin    *string   `json:"stdin"`
	Command  *string   `json:"command"`
}

// RunFile is one named source file submitted inline.
type RunFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// RunResult is the service's report of a completed run. Error is empty
// on success.
type RunResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Error  string `json:"error"`
}

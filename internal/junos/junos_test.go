package junos

// fakeSession records the RPCs sent and replays canned responses.
type fakeSession struct {
	rpcs    []string
	reply   string
	err     error
	cmdOut  string
	cmdErr  error
	cmdSent []string
}

func (f *fakeSession) Exec(rpc string) (string, error) {
	f.rpcs = append(f.rpcs, rpc)
	return f.reply, f.err
}

func (f *fakeSession) Command(cmd string) (string, error) {
	f.cmdSent = append(f.cmdSent, cmd)
	return f.cmdOut, f.cmdErr
}

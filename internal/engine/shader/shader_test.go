package shader

import "testing"

func TestTerminate(t *testing.T) {
	if got := terminate("mvp"); got != "mvp\x00" {
		t.Errorf("terminate(mvp) = %q", got)
	}
	if got := terminate("mvp\x00"); got != "mvp\x00" {
		t.Errorf("terminate kept a second NUL: %q", got)
	}
}

func TestTrimLog(t *testing.T) {
	log := []byte("ERROR: 0:3: 'vec5' : undeclared identifier\n\x00\x00")
	want := "ERROR: 0:3: 'vec5' : undeclared identifier"
	if got := trimLog(log); got != want {
		t.Errorf("trimLog = %q, want %q", got, want)
	}
	if got := trimLog([]byte{0}); got != "" {
		t.Errorf("trimLog of empty log = %q", got)
	}
}

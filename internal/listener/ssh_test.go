package listener

import (
	"bufio"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/ssh"
)

// echoRunner greets the player and echoes back one line.
func echoRunner(ctx context.Context, conn io.ReadWriter) error {
	_, _ = io.WriteString(conn, "hi\n")
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return err
	}
	_, err = io.WriteString(conn, "got "+line)
	return err
}

func testSshListener(t *testing.T) *SshListener {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		t.Fatalf("creating signer: %v", err)
	}
	return NewSshListener(0, NewConnectionManager(runnerFunc(echoRunner)), signer)
}

// readAll reads r to EOF, failing the test if the other side never closes it.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()
	select {
	case res := <-done:
		testutil.AssertEqual(t, "read error", res.err, nil)
		return res.data
	case <-time.After(5 * time.Second):
		t.Fatal("timed out reading from the channel")
		return nil
	}
}

// dialPipe runs handleConnection on one end of a pipe and returns a client on the other.
func dialPipe(t *testing.T, l *SshListener) *ssh.Client {
	t.Helper()
	serverSide, clientSide := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.handleConnection(ctx, serverSide, l.serverConfig())
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	var banner string
	c, chans, reqs, err := ssh.NewClientConn(clientSide, "pipe", &ssh.ClientConfig{
		User:            "player",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		BannerCallback: func(message string) error {
			banner = message
			return nil
		},
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("ssh handshake: %v", err)
	}
	testutil.AssertEqual(t, "banner", banner, sshBanner)
	return ssh.NewClient(c, chans, reqs)
}

func TestSshListener_Shell(t *testing.T) {
	client := dialPipe(t, testSshListener(t))
	defer func() { _ = client.Close() }()

	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("opening session: %v", err)
	}
	stdin, err := sess.StdinPipe()
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	stdout, err := sess.StdoutPipe()
	if err != nil {
		t.Fatalf("stdout: %v", err)
	}

	// The pty is declined so the client keeps its own line editing.
	err = sess.RequestPty("xterm", 24, 80, ssh.TerminalModes{})
	if err == nil {
		t.Error("expected pty request to be declined")
	}

	err = sess.Shell()
	testutil.AssertEqual(t, "shell error", err, nil)

	_, err = io.WriteString(stdin, "look\r")
	testutil.AssertEqual(t, "write error", err, nil)

	out := readAll(t, stdout)
	testutil.AssertEqual(t, "output", string(out), "hi\r\ngot look\r\n")
}

func TestSshListener_ExecRejected(t *testing.T) {
	client := dialPipe(t, testSshListener(t))
	defer func() { _ = client.Close() }()

	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("opening session: %v", err)
	}
	stderr, err := sess.StderrPipe()
	if err != nil {
		t.Fatalf("stderr: %v", err)
	}

	err = sess.Start("look")
	if err == nil {
		t.Fatal("expected exec to be declined")
	}

	msg := readAll(t, stderr)
	if !strings.Contains(string(msg), "commands are not supported") {
		t.Errorf("unexpected stderr: %q", msg)
	}
}

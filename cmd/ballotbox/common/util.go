package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/errors"
)

// Exit is replaced in tests.
var Exit = os.Exit

func errorString(err error) string {
	if e, ok := err.(*errors.Error); ok {
		if len(e.Data) < 1 {
			return e.Message
		}
		return fmt.Sprintf("%s; %v", e.Message, e.Data)
	}
	return err.Error()
}

/**
 * Issue a message on Stderr then exit with an error code
 */
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, errorString(err))
	}

	cmd.Help()

	Exit(1)
}

func PrintError(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", errorString(err))
	}

	Exit(1)
}

// ParseSecretSeed parses `seed`; the public address is not allowed.
func ParseSecretSeed(seed string) (*keypair.Full, error) {
	kp, err := keypair.Parse(seed)
	if err != nil {
		return nil, err
	}

	full, ok := kp.(*keypair.Full)
	if !ok {
		return nil, fmt.Errorf("provided key is an address, not a secret seed")
	}
	return full, nil
}

//
// ParseDeadline reads the end of the poll. It accepts the unix seconds,
// a RFC3339 time or a duration from `now` like `72h`.
//
func ParseDeadline(s string, now time.Time) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) < 1 {
		return 0, fmt.Errorf("empty deadline")
	}

	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("duration must be positive: %s", s)
		}
		return unixSeconds(now.Add(d))
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return unixSeconds(t)
	}

	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid deadline: %s", s)
	}
	return u, nil
}

func unixSeconds(t time.Time) (uint64, error) {
	unix := t.Unix()
	if unix < 0 {
		return 0, fmt.Errorf("deadline before 1970: %s", t.Format(time.RFC3339))
	}

	return uint64(unix), nil
}

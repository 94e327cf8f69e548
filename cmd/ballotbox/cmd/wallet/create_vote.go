package wallet

import (
	"time"

	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

var (
	CreateVoteCmd *cobra.Command

	flagDescription string
	flagEnds        string = "72h"
)

func init() {
	CreateVoteCmd = &cobra.Command{
		Use:   "create-vote <secret seed> <title> <option>...",
		Short: "Create the poll with 2 to 4 options",
		Args:  cobra.MinimumNArgs(2),
		Run: func(c *cobra.Command, args []string) {
			kp, err := cmdcommon.ParseSecretSeed(args[0])
			if err != nil {
				cmdcommon.PrintFlagsError(c, "<secret seed>", err)
				return
			}

			endsAt, err := cmdcommon.ParseDeadline(flagEnds, time.Now())
			if err != nil {
				cmdcommon.PrintFlagsError(c, "--ends", err)
				return
			}

			op, err := operation.NewOperation(
				operation.NewCreateVote(args[1], flagDescription, endsAt, args[2:]...),
			)
			if err != nil {
				cmdcommon.PrintError(c, err)
				return
			}

			submit(c, kp, op)
		},
	}

	CreateVoteCmd.Flags().StringVar(&flagDescription, "description", flagDescription, "description of the poll")
	CreateVoteCmd.Flags().StringVar(&flagEnds, "ends", flagEnds, "end of voting; unix seconds, RFC3339 time or duration from now")
	addCommonFlags(CreateVoteCmd)
}

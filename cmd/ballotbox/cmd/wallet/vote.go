package wallet

import (
	"strconv"

	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

var (
	VoteCmd *cobra.Command

	flagOptIn bool
)

func init() {
	VoteCmd = &cobra.Command{
		Use:   "vote <secret seed> <option>",
		Short: "Vote for the option; the option starts from 1",
		Args:  cobra.ExactArgs(2),
		Run: func(c *cobra.Command, args []string) {
			kp, err := cmdcommon.ParseSecretSeed(args[0])
			if err != nil {
				cmdcommon.PrintFlagsError(c, "<secret seed>", err)
				return
			}

			option, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				cmdcommon.PrintFlagsError(c, "<option>", err)
				return
			}

			var ops []operation.Operation
			if flagOptIn {
				op, _ := operation.NewOperation(operation.OptIn{})
				ops = append(ops, op)
			}
			op, _ := operation.NewOperation(operation.NewVote(option))
			ops = append(ops, op)

			submit(c, kp, ops...)
		},
	}

	VoteCmd.Flags().BoolVar(&flagOptIn, "opt-in", flagOptIn, "opt in within the same transaction")
	addCommonFlags(VoteCmd)
}

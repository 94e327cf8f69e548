package wallet

import (
	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

var OptInCmd *cobra.Command

func init() {
	OptInCmd = &cobra.Command{
		Use:   "opt-in <secret seed>",
		Short: "Opt in to the poll; an account must opt in before voting",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			kp, err := cmdcommon.ParseSecretSeed(args[0])
			if err != nil {
				cmdcommon.PrintFlagsError(c, "<secret seed>", err)
				return
			}

			op, _ := operation.NewOperation(operation.OptIn{})
			submit(c, kp, op)
		},
	}

	addCommonFlags(OptInCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/client"
	"boscoin.io/ballotbox/lib/common"
)

var (
	pollCmd *cobra.Command

	flagPollEndpoint string = common.GetENVValue("BALLOTBOX_ENDPOINT", fmt.Sprintf("http://localhost:%d", common.DefaultEndpointPort))
	flagPollFormat   string = "prettyjson"
	flagWatchSource  string
)

func newPollClient(c *cobra.Command) (*client.Client, cmdcommon.Encode) {
	encode, ok := cmdcommon.DefaultEncodes[flagPollFormat]
	if !ok {
		cmdcommon.PrintFlagsError(c, "--format", fmt.Errorf(`"%s" not recognized`, flagPollFormat))
		return nil, nil
	}

	endpoint, err := common.ParseEndpoint(flagPollEndpoint)
	if err != nil {
		cmdcommon.PrintFlagsError(c, "--endpoint", err)
		return nil, nil
	}

	return client.NewClient(endpoint.String()), encode
}

func init() {
	pollCmd = &cobra.Command{
		Use:   "poll",
		Short: "Query the poll",
		Run: func(c *cobra.Command, args []string) {
			if len(args) < 1 {
				c.Usage()
			}
		},
	}
	pollCmd.PersistentFlags().StringVar(&flagPollEndpoint, "endpoint", flagPollEndpoint, "endpoint of the node")
	pollCmd.PersistentFlags().StringVar(&flagPollFormat, "format", flagPollFormat, "format={json, prettyjson, yaml}")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the poll and the tallies",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			cl, encode := newPollClient(c)
			if cl == nil {
				return
			}
			defer cl.Close()

			p, err := cl.LoadPoll()
			if err != nil {
				cmdcommon.PrintError(c, err)
				return
			}
			if err = encode(p, c.OutOrStdout()); err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}

	voterCmd := &cobra.Command{
		Use:   "voter <address>",
		Short: "Print the voter record of the account",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			cl, encode := newPollClient(c)
			if cl == nil {
				return
			}
			defer cl.Close()

			v, err := cl.LoadVoter(args[0])
			if err != nil {
				cmdcommon.PrintError(c, err)
				return
			}
			if err = encode(v, c.OutOrStdout()); err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the receipts as they are applied",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			cl, encode := newPollClient(c)
			if cl == nil {
				return
			}
			defer cl.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				cmdcommon.Interrupt(ctx.Done())
				cancel()
			}()

			err := cl.StreamReceipts(ctx, flagWatchSource, func(r client.Receipt) {
				encode(r, c.OutOrStdout())
			})
			if err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}
	watchCmd.Flags().StringVar(&flagWatchSource, "source", flagWatchSource, "only the receipts of the account")

	pollCmd.AddCommand(showCmd, voterCmd, watchCmd)
	rootCmd.AddCommand(pollCmd)
}

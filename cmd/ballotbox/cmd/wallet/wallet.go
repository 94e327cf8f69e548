package wallet

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/client"
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/transaction"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

var (
	flagEndpoint  string = common.GetENVValue("BALLOTBOX_ENDPOINT", fmt.Sprintf("http://localhost:%d", common.DefaultEndpointPort))
	flagNetworkID string = common.GetENVValue("BALLOTBOX_NETWORK_ID", "")
	flagFormat    string = "prettyjson"
	flagDryRun    bool
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func addCommonFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagEndpoint, "endpoint", flagEndpoint, "endpoint of the node to send the transaction to")
	c.Flags().StringVar(&flagNetworkID, "network-id", flagNetworkID, "network id")
	c.Flags().StringVar(&flagFormat, "format", flagFormat, "format={json, prettyjson, yaml}")
	c.Flags().BoolVar(&flagDryRun, "dry-run", flagDryRun, "print the signed transaction without sending it")
}

// makeTransaction signs the operations by `kp`; a random nonce keeps the
// hash of the same operations unique.
func makeTransaction(kp *keypair.Full, networkID []byte, ops ...operation.Operation) (tx transaction.Transaction, err error) {
	if tx, err = transaction.NewTransaction(kp.Address(), rand.Uint64(), ops...); err != nil {
		return
	}
	tx.Sign(kp, networkID)

	return
}

func submit(c *cobra.Command, kp *keypair.Full, ops ...operation.Operation) {
	if len(flagNetworkID) < 1 {
		cmdcommon.PrintFlagsError(c, "--network-id", fmt.Errorf("a --network-id needs to be provided"))
		return
	}

	encode, ok := cmdcommon.DefaultEncodes[flagFormat]
	if !ok {
		cmdcommon.PrintFlagsError(c, "--format", fmt.Errorf(`"%s" not recognized`, flagFormat))
		return
	}

	endpoint, err := common.ParseEndpoint(flagEndpoint)
	if err != nil {
		cmdcommon.PrintFlagsError(c, "--endpoint", err)
		return
	}

	tx, err := makeTransaction(kp, []byte(flagNetworkID), ops...)
	if err != nil {
		cmdcommon.PrintError(c, err)
		return
	}

	if flagDryRun {
		if err = encode(tx, c.OutOrStdout()); err != nil {
			cmdcommon.PrintError(c, err)
		}
		return
	}

	cl := client.NewClient(endpoint.String())
	defer cl.Close()

	receipt, err := cl.SubmitTransaction(tx)
	if err != nil {
		cmdcommon.PrintError(c, err)
		return
	}

	if err = encode(receipt, c.OutOrStdout()); err != nil {
		cmdcommon.PrintError(c, err)
	}
}

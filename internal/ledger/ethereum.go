package ledger

import (
	"context"
	_ "embed"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

//go:embed registry_abi.json
var registryABIJSON []byte

var (
	registryABI  abi.ABI
	parseABIOnce sync.Once
	errParseABI  error
)

func loadABI() (abi.ABI, error) {
	parseABIOnce.Do(func() {
		registryABI, errParseABI = abi.JSON(strings.NewReader(string(registryABIJSON)))
	})
	return registryABI, errParseABI
}

// EthereumClient talks to the registry contract over an RPC endpoint. All
// writes are signed transactions; all reads are view calls.
type EthereumClient struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	chainID  *big.Int
	tracer   trace.Tracer
}

var _ Client = (*EthereumClient)(nil)

// NewEthereumClient dials the RPC endpoint and binds the registry contract.
func NewEthereumClient(ctx context.Context, rpcURL, contractAddress string, chainID int64) (*EthereumClient, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, dErrors.New(dErrors.CodeMalformedInput, "invalid contract address: "+contractAddress)
	}

	contractABI, err := loadABI()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "registry ABI does not parse")
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeLedgerRead, "dialing ledger RPC failed")
	}

	addr := common.HexToAddress(contractAddress)
	return &EthereumClient{
		client:   client,
		contract: bind.NewBoundContract(addr, contractABI, client, client, client),
		chainID:  big.NewInt(chainID),
		tracer:   otel.Tracer("ssi-backend/ledger"),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *EthereumClient) Close() {
	c.client.Close()
}

func (c *EthereumClient) transact(ctx context.Context, key Signer, method string, args ...any) error {
	ctx, span := c.tracer.Start(ctx, "ledger."+method,
		trace.WithAttributes(attribute.String("ledger.signer", key.Address().Hex())))
	defer span.End()

	auth, err := bind.NewKeyedTransactorWithChainID(key.Key(), c.chainID)
	if err != nil {
		span.RecordError(err)
		return dErrors.Wrap(err, dErrors.CodeLedgerWrite, "building transactor failed")
	}
	auth.Context = ctx

	tx, err := c.contract.Transact(auth, method, args...)
	if err != nil {
		span.RecordError(err)
		return dErrors.Wrap(err, dErrors.CodeLedgerWrite, method+" transaction failed")
	}

	if _, err := bind.WaitMined(ctx, c.client, tx); err != nil {
		span.RecordError(err)
		return dErrors.Wrap(err, dErrors.CodeLedgerWrite, method+" transaction not mined")
	}
	return nil
}

func (c *EthereumClient) listCall(ctx context.Context, method string, address common.Address) ([][]byte, error) {
	ctx, span := c.tracer.Start(ctx, "ledger."+method,
		trace.WithAttributes(attribute.String("ledger.address", address.Hex())))
	defer span.End()

	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, address); err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeLedgerRead, method+" call failed")
	}
	if len(out) == 0 {
		return nil, nil
	}
	records, ok := out[0].([][]byte)
	if !ok {
		return nil, dErrors.New(dErrors.CodeLedgerRead, method+" returned an unexpected shape")
	}
	return records, nil
}

func (c *EthereumClient) AppendIdentifier(ctx context.Context, key Signer, record []byte) error {
	return c.transact(ctx, key, "setResolvableDIDHash", record)
}

func (c *EthereumClient) RemoveIdentifierByIndex(ctx context.Context, key Signer, index int) error {
	return c.transact(ctx, key, "removeResolvableDIDHash", big.NewInt(int64(index)))
}

func (c *EthereumClient) ListIdentifiers(ctx context.Context, address common.Address) ([][]byte, error) {
	return c.listCall(ctx, "retrieveResolvableDIDHash", address)
}

func (c *EthereumClient) RecordIssuedCertificate(ctx context.Context, key Signer, holder common.Address, sealed []byte) error {
	return c.transact(ctx, key, "setIssuedCertificateHash", holder, sealed)
}

func (c *EthereumClient) RevokeCertificate(ctx context.Context, key Signer, sealed []byte) error {
	return c.transact(ctx, key, "revokeCertificate", sealed)
}

func (c *EthereumClient) ListIssuedBy(ctx context.Context, address common.Address) ([][]byte, error) {
	return c.listCall(ctx, "userToIssuedCertificates", address)
}

func (c *EthereumClient) ListOwnedBy(ctx context.Context, address common.Address) ([][]byte, error) {
	return c.listCall(ctx, "userToOwnedCertificates", address)
}

func (c *EthereumClient) ListRevokedBy(ctx context.Context, address common.Address) ([][]byte, error) {
	return c.listCall(ctx, "addressToRevokedCIDS", address)
}

package idrx

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lomba_backend/internal/usecase/interfaces"
)

const (
	mintRequestPath    = "/api/transaction/mint-request"
	historyPath        = "/api/transaction/user-transaction-history"
	paymentMethodsPath = "/api/transaction/method"

	headerAPIKey    = "idrx-api-key"
	headerSignature = "idrx-api-sig"
	headerTimestamp = "idrx-api-ts"
)

// ProviderError is a failed call to the IDRX API: non-2xx response or a body
// that could not be decoded. It is retryable from the scheduler's point of
// view and never implies a terminal payment state.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("idrx api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Client talks to the IDRX transaction API.
//
// Every request carries the API key, an HMAC-SHA256 signature of the current
// wall-clock millisecond timestamp, and the timestamp itself; all three are
// derived fresh per call so the provider's replay check accepts them.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ interfaces.IMintingProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type customerDetail struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type mintRequestBody struct {
	ToBeMinted               string          `json:"toBeMinted"`
	DestinationWalletAddress string          `json:"destinationWalletAddress"`
	NetworkChainID           string          `json:"networkChainId"`
	ExpiryPeriod             int             `json:"expiryPeriod"`
	RequestType              string          `json:"requestType,omitempty"`
	ProductDetails           string          `json:"productDetails,omitempty"`
	CustomerDetail           *customerDetail `json:"customerDetail,omitempty"`
}

type mintResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       struct {
		ID              string `json:"id"`
		MerchantCode    string `json:"merchantCode"`
		Reference       string `json:"reference"`
		PaymentURL      string `json:"paymentUrl"`
		Amount          string `json:"amount"`
		MerchantOrderID string `json:"merchantOrderId"`
	} `json:"data"`
}

type historyRecord struct {
	ID              int64  `json:"id"`
	MerchantOrderID string `json:"merchantOrderId"`
	Reference       string `json:"reference"`
	PaymentStatus   string `json:"paymentStatus"`
	UserMintStatus  string `json:"userMintStatus"`
	TxHash          string `json:"txHash"`
	ToBeMinted      string `json:"toBeMinted"`
	UpdatedAt       string `json:"updatedAt"`
}

type historyResponse struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Records    []historyRecord `json:"records"`
}

// CreateMintRequest registers a fiat-to-token mint request and returns the
// provider correlation ids plus the payment URL for the payer.
func (c *Client) CreateMintRequest(ctx context.Context, params interfaces.MintRequestParams) (interfaces.MintRegistration, error) {
	body := mintRequestBody{
		ToBeMinted:               strconv.FormatInt(params.Amount, 10),
		DestinationWalletAddress: c.cfg.DestinationWallet,
		NetworkChainID:           c.cfg.NetworkChainID,
		ExpiryPeriod:             params.ExpiryHours,
		RequestType:              "idrx",
		ProductDetails:           params.ProductDetails,
	}
	if params.CustomerEmail != "" {
		body.CustomerDetail = &customerDetail{
			FirstName: params.CustomerName,
			Email:     params.CustomerEmail,
		}
	}

	var resp mintResponse
	if err := c.do(ctx, http.MethodPost, mintRequestPath, nil, body, &resp); err != nil {
		return interfaces.MintRegistration{}, err
	}
	log.Printf("[idrx][client] mint request registered reference=%s merchant_order_id=%s", resp.Data.Reference, resp.Data.MerchantOrderID)

	return interfaces.MintRegistration{
		Reference:       resp.Data.Reference,
		MerchantOrderID: resp.Data.MerchantOrderID,
		PaymentURL:      resp.Data.PaymentURL,
		Amount:          resp.Data.Amount,
		WalletAddress:   c.cfg.DestinationWallet,
	}, nil
}

// GetTransactionStatus looks an order up in the MINT transaction history by
// merchant order id. A nil record with nil error means the provider does not
// know the order yet (ingestion lag); callers must treat that as "not yet
// known", not as a failure.
func (c *Client) GetTransactionStatus(ctx context.Context, merchantOrderID string) (*interfaces.ProviderTransaction, error) {
	query := url.Values{}
	query.Set("transactionType", "MINT")
	query.Set("page", "1")
	query.Set("take", "10")
	query.Set("merchantOrderId", merchantOrderID)

	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, historyPath, query, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, nil
	}

	rec := resp.Records[0]
	updatedAt, err := time.Parse(time.RFC3339, rec.UpdatedAt)
	if err != nil {
		updatedAt = time.Now().UTC()
	}
	return &interfaces.ProviderTransaction{
		MerchantOrderID: rec.MerchantOrderID,
		Reference:       rec.Reference,
		PaymentStatus:   rec.PaymentStatus,
		MintStatus:      rec.UserMintStatus,
		TxHash:          rec.TxHash,
		UpdatedAt:       updatedAt,
	}, nil
}

// GetPaymentMethods returns the provider's payment method catalogue as-is.
func (c *Client) GetPaymentMethods(ctx context.Context) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, paymentMethodsPath, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	c.sign(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

// sign attaches the idrx auth headers. Signature = HMAC-SHA256 of the literal
// millisecond timestamp string, keyed with the secret key.
func (c *Client) sign(req *http.Request) {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)

	mac := hmac.New(sha256.New, []byte(c.cfg.SecretKey))
	mac.Write([]byte(ts))
	sig := hex.EncodeToString(mac.Sum(nil))

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.cfg.APIKey)
	req.Header.Set(headerSignature, sig)
	req.Header.Set(headerTimestamp, ts)
}

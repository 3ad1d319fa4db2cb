package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okezie/pawhaven/config"
)

var (
	// ErrPaymentDeclined indicates the provider rejected the charge itself,
	// as opposed to a transport or provider outage.
	ErrPaymentDeclined = errors.New("payment declined")
)

// PaymentIntent is the provider's handle for one charge. ClientSecret is
// returned to the caller so the payment can be confirmed client-side.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	AmountCents  int64  `json:"amount"`
}

// PaymentClient talks to the hosted payment provider's REST API. Provider
// errors are normalized here and never propagated raw to callers.
type PaymentClient struct {
	client    *http.Client
	baseURL   string
	secretKey string
	currency  string
}

// NewPaymentClient configures a client for the hosted payment provider.
func NewPaymentClient(cfg config.Config) *PaymentClient {
	return &PaymentClient{
		client:    NewHTTPClient(),
		baseURL:   cfg.Payment.BaseURL,
		secretKey: cfg.Payment.SecretKey,
		currency:  cfg.Payment.Currency,
	}
}

// CreateIntent registers a charge with the provider and returns the intent
// handle. The charge is not captured until the client confirms it.
func (p *PaymentClient) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", p.currency)
	for k, v := range metadata {
		form.Set("metadata["+k+"]", v)
	}
	return p.do(ctx, http.MethodPost, "/payment_intents", form)
}

// GetIntent retrieves the current state of a payment intent.
func (p *PaymentClient) GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	return p.do(ctx, http.MethodGet, "/payment_intents/"+url.PathEscape(intentID), nil)
}

func (p *PaymentClient) do(ctx context.Context, method, path string, form url.Values) (*PaymentIntent, error) {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusPaymentRequired, resp.StatusCode == http.StatusForbidden:
		return nil, ErrPaymentDeclined
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("payment provider responded with status %d", resp.StatusCode)
	}
	var intent PaymentIntent
	err = json.NewDecoder(resp.Body).Decode(&intent)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

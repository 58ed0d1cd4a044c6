// Package address validates and corrects US postal addresses through the
// USPS Web Tools Verify API. It is a collaborator of the duplicate engine,
// not part of it; nothing here touches the grouping path.
package address

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrNoUserID = errors.New("usps user id is not set")

// APIError is an error reported by the USPS API itself (bad address, bad
// credentials), as opposed to a transport failure.
type APIError struct {
	Number      string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("usps api error %s: %s", e.Number, e.Description)
}

type Address struct {
	Address1 string `json:"address1" xml:"Address1"`
	Address2 string `json:"address2" xml:"Address2"`
	City     string `json:"city" xml:"City"`
	State    string `json:"state" xml:"State"`
	Zip5     string `json:"zip5" xml:"Zip5"`
	Zip4     string `json:"zip4" xml:"Zip4"`
}

type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

func NewClient(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type validateRequest struct {
	XMLName  xml.Name       `xml:"AddressValidateRequest"`
	UserID   string         `xml:"USERID,attr"`
	Revision int            `xml:"Revision"`
	Address  requestAddress `xml:"Address"`
}

type requestAddress struct {
	ID string `xml:"ID,attr"`
	Address
}

// Validate sends one address to the Verify endpoint and returns the
// corrected form. API-level failures come back as *APIError; no retries,
// the caller decides what a failed lookup means for its row.
func (c *Client) Validate(ctx context.Context, in Address) (*Address, error) {
	if c.userID == "" {
		return nil, ErrNoUserID
	}

	payload, err := xml.Marshal(validateRequest{
		UserID:   c.userID,
		Revision: 1,
		Address:  requestAddress{ID: "0", Address: in},
	})
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("API", "Verify")
	q.Set("XML", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usps: unexpected status %d", resp.StatusCode)
	}
	return parseResponse(body)
}

func parseResponse(body []byte) (*Address, error) {
	// Auth failures arrive as a bare <Error> document instead of an
	// AddressValidateResponse, so sniff the root element first.
	var root struct {
		XMLName     xml.Name
		Number      string `xml:"Number"`
		Description string `xml:"Description"`
	}
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("usps: bad response: %w", err)
	}
	if root.XMLName.Local == "Error" {
		return nil, &APIError{Number: root.Number, Description: root.Description}
	}

	var resp struct {
		Address struct {
			Address
			Error *struct {
				Number      string `xml:"Number"`
				Description string `xml:"Description"`
			} `xml:"Error"`
		} `xml:"Address"`
	}
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("usps: bad response: %w", err)
	}
	if resp.Address.Error != nil {
		return nil, &APIError{
			Number:      resp.Address.Error.Number,
			Description: resp.Address.Error.Description,
		}
	}
	out := resp.Address.Address
	return &out, nil
}

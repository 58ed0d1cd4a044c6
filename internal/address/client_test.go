package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCorrectsAddress(t *testing.T) {
	var gotAPI, gotXML string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPI = r.URL.Query().Get("API")
		gotXML = r.URL.Query().Get("XML")
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<AddressValidateResponse><Address ID="0">
<Address2>6406 IVY LN</Address2>
<City>GREENBELT</City><State>MD</State>
<Zip5>20770</Zip5><Zip4>1441</Zip4>
</Address></AddressValidateResponse>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TESTUSER")
	got, err := c.Validate(context.Background(), Address{
		Address2: "6406 Ivy Lane",
		City:     "Greenbelt",
		State:    "MD",
		Zip5:     "20770",
	})
	require.NoError(t, err)

	assert.Equal(t, "Verify", gotAPI)
	assert.True(t, strings.Contains(gotXML, `USERID="TESTUSER"`), "request XML carries the user id")
	assert.True(t, strings.Contains(gotXML, "<Address2>6406 Ivy Lane</Address2>"))

	assert.Equal(t, "6406 IVY LN", got.Address2)
	assert.Equal(t, "GREENBELT", got.City)
	assert.Equal(t, "MD", got.State)
	assert.Equal(t, "20770", got.Zip5)
	assert.Equal(t, "1441", got.Zip4)
}

func TestValidateAddressLevelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<AddressValidateResponse><Address ID="0">
<Error><Number>-2147219401</Number><Description>Address Not Found.</Description></Error>
</Address></AddressValidateResponse>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TESTUSER")
	_, err := c.Validate(context.Background(), Address{Address2: "nowhere"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Address Not Found.", apiErr.Description)
}

func TestValidateTopLevelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<Error><Number>80040B1A</Number><Description>Authorization failure.</Description></Error>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "BADUSER")
	_, err := c.Validate(context.Background(), Address{Address2: "6406 Ivy Lane"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Authorization failure.", apiErr.Description)
	assert.Equal(t, "80040B1A", apiErr.Number)
}

func TestValidateNoUserID(t *testing.T) {
	c := NewClient("http://example.invalid", "")
	_, err := c.Validate(context.Background(), Address{Address2: "6406 Ivy Lane"})
	require.ErrorIs(t, err, ErrNoUserID)
}

func TestValidateBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TESTUSER")
	_, err := c.Validate(context.Background(), Address{Address2: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package records_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/OpSecId/traction/exceptions"
	"github.com/OpSecId/traction/records"
	"github.com/OpSecId/traction/status"
)

type fakeReservationData struct {
	TenantName   string `faker:"username"`
	TenantReason string `faker:"sentence"`
	ContactName  string `faker:"name"`
	ContactEmail string `faker:"email"`
	ContactPhone string `faker:"phone_number"`
}

func generateFakeReservationRequest(t *testing.T) records.ReservationRequest {
	fakeData := fakeReservationData{}
	if err := faker.FakeData(&fakeData); err != nil {
		t.Fatal("Failed to generate fake data", err)
	}
	return records.ReservationRequest{
		TenantName:   fakeData.TenantName,
		TenantReason: fakeData.TenantReason,
		ContactName:  fakeData.ContactName,
		ContactEmail: fakeData.ContactEmail,
		ContactPhone: fakeData.ContactPhone,
	}
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()

	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}

func TestNewReservation(t *testing.T) {
	req := generateFakeReservationRequest(t)
	reservation := records.NewReservation(req)

	if _, err := uuid.Parse(reservation.ReservationID); err != nil {
		t.Fatal("Reservation ID should be a UUID", err)
	}
	AssertEqual(t, reservation.State, status.ReservationRequested)
	AssertEqual(t, reservation.TenantName, req.TenantName)
	AssertEqual(t, reservation.TenantReason, req.TenantReason)
	AssertEqual(t, reservation.ContactName, req.ContactName)
	AssertEqual(t, reservation.ContactEmail, req.ContactEmail)
	AssertEqual(t, reservation.ContactPhone, req.ContactPhone)
	AssertEqual(t, reservation.TenantID, "")
	AssertEqual(t, reservation.WalletID, "")

	t.Run("Should omit unassigned tenant and wallet ids from JSON", func(t *testing.T) {
		data, err := json.Marshal(reservation)
		if err != nil {
			t.Fatal("Failed to marshal reservation", err)
		}
		if strings.Contains(string(data), "tenant_id") || strings.Contains(string(data), "wallet_id") {
			t.Fatalf("Unassigned ids should be omitted, got %s", data)
		}
	})
}

func TestNewTenant(t *testing.T) {
	tenant := records.NewTenant("alice-corp", "wallet-1")

	if _, err := uuid.Parse(tenant.TenantID); err != nil {
		t.Fatal("Tenant ID should be a UUID", err)
	}
	AssertEqual(t, tenant.State, status.TenantActive)
	AssertEqual(t, tenant.TenantName, "alice-corp")
	AssertEqual(t, tenant.WalletID, "wallet-1")
}

func TestReservationToken(t *testing.T) {
	now := time.Now()
	token := records.NewReservationToken(uuid.NewString(), now)

	t.Run("Should expire exactly seven days after issuance", func(t *testing.T) {
		want := now.Add(time.Duration(records.ReservationTokenTTLDays) * 24 * time.Hour)
		if !token.ExpiresAt.Equal(want) {
			t.Fatalf("Actual: %v, Expected: %v", token.ExpiresAt, want)
		}
	})

	t.Run("Should not be expired before the deadline", func(t *testing.T) {
		AssertEqual(t, token.Expired(now), false)
		AssertEqual(t, token.Expired(token.ExpiresAt), false)
	})

	t.Run("Should be expired after the deadline", func(t *testing.T) {
		AssertEqual(t, token.Expired(token.ExpiresAt.Add(time.Second)), true)
	})

	t.Run("Should never expire without a deadline", func(t *testing.T) {
		unbounded := records.ReservationToken{Token: token.Token}
		AssertEqual(t, unbounded.Expired(now.Add(100*365*24*time.Hour)), false)
	})
}

func TestValidateReservationRequest(t *testing.T) {
	t.Run("Should accept a complete request", func(t *testing.T) {
		if serviceErr := records.Validate(generateFakeReservationRequest(t)); serviceErr != nil {
			t.Fatal("Expected no error, got", serviceErr)
		}
	})

	invalidCases := []struct {
		Name     string
		MutateFn func(req *records.ReservationRequest)
		Expected string
	}{
		{
			Name:     "Should reject a missing tenant name",
			MutateFn: func(req *records.ReservationRequest) { req.TenantName = "" },
			Expected: "tenant_name must be provided",
		},
		{
			Name:     "Should reject a missing reason",
			MutateFn: func(req *records.ReservationRequest) { req.TenantReason = "" },
			Expected: "tenant_reason must be provided",
		},
		{
			Name:     "Should reject a missing contact email",
			MutateFn: func(req *records.ReservationRequest) { req.ContactEmail = "" },
			Expected: "contact_email must be provided",
		},
		{
			Name:     "Should reject a malformed contact email",
			MutateFn: func(req *records.ReservationRequest) { req.ContactEmail = "not-an-email" },
			Expected: "contact_email must be a valid email",
		},
		{
			Name:     "Should reject a missing contact phone",
			MutateFn: func(req *records.ReservationRequest) { req.ContactPhone = "" },
			Expected: "contact_phone must be provided",
		},
	}

	for _, tc := range invalidCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := generateFakeReservationRequest(t)
			tc.MutateFn(&req)

			serviceErr := records.Validate(req)
			if serviceErr == nil {
				t.Fatal("Expected a validation error, got nil")
			}
			AssertEqual(t, serviceErr.Code, exceptions.CodeValidation)
			if !strings.Contains(serviceErr.Message, tc.Expected) {
				t.Fatalf("Message %q should contain %q", serviceErr.Message, tc.Expected)
			}
		})
	}
}

func TestValidateTokenRequests(t *testing.T) {
	t.Run("Should reject a check-in without a reservation token", func(t *testing.T) {
		serviceErr := records.Validate(records.CheckInRequest{})
		if serviceErr == nil {
			t.Fatal("Expected a validation error, got nil")
		}
		AssertEqual(t, serviceErr.Code, exceptions.CodeValidation)
		if !strings.Contains(serviceErr.Message, "reservation_token must be provided") {
			t.Fatalf("Unexpected message %q", serviceErr.Message)
		}
	})

	t.Run("Should accept a check-in with a reservation token", func(t *testing.T) {
		serviceErr := records.Validate(records.CheckInRequest{ReservationToken: uuid.NewString()})
		if serviceErr != nil {
			t.Fatal("Expected no error, got", serviceErr)
		}
	})

	t.Run("Should reject a wallet token request without a wallet key", func(t *testing.T) {
		serviceErr := records.Validate(records.WalletTokenRequest{})
		if serviceErr == nil {
			t.Fatal("Expected a validation error, got nil")
		}
		AssertEqual(t, serviceErr.Code, exceptions.CodeValidation)
		if !strings.Contains(serviceErr.Message, "wallet_key must be provided") {
			t.Fatalf("Unexpected message %q", serviceErr.Message)
		}
	})
}

func TestCheckInResponseJSON(t *testing.T) {
	t.Run("Should omit the token when one was not issued", func(t *testing.T) {
		data, err := json.Marshal(records.CheckInResponse{
			WalletID:  "wallet-1",
			WalletKey: "secret",
		})
		if err != nil {
			t.Fatal("Failed to marshal check-in response", err)
		}

		body := string(data)
		if !strings.Contains(body, `"wallet_id":"wallet-1"`) || !strings.Contains(body, `"wallet_key":"secret"`) {
			t.Fatalf("Unexpected body %s", body)
		}
		if strings.Contains(body, "token") {
			t.Fatalf("Unissued token should be omitted, got %s", body)
		}
	})

	t.Run("Should carry an issued token", func(t *testing.T) {
		issued := uuid.NewString()
		data, err := json.Marshal(records.TokenResponse{Token: issued})
		if err != nil {
			t.Fatal("Failed to marshal token response", err)
		}

		AssertEqual(t, string(data), `{"token":"`+issued+`"}`)
	})
}

package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"getaroom/pkg/model"
)

// GetARoomClient is a typed client for the room booking API.
type GetARoomClient struct {
	httpClient *HttpClient
}

func NewGetARoomClient(baseURL, apiKey string) *GetARoomClient {
	return &GetARoomClient{
		httpClient: NewHttpClient(baseURL, apiKey),
	}
}

func (c *GetARoomClient) WaitForHealthy(maxWait time.Duration) error {
	return c.httpClient.WaitForHealthy(maxWait)
}

func (c *GetARoomClient) ListRooms(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/rooms")
}

func (c *GetARoomClient) ListRoomBookings(ctx context.Context, roomID string) (*Response, error) {
	path := "/rooms/" + url.PathEscape(roomID) + "/bookings"
	return c.httpClient.GET(ctx, path)
}

func (c *GetARoomClient) CreateBooking(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/bookings", body)
}

func (c *GetARoomClient) CancelBooking(ctx context.Context, bookingID string) (*Response, error) {
	path := "/bookings/" + url.PathEscape(bookingID)
	return c.httpClient.DELETE(ctx, path)
}

func (c *GetARoomClient) DecodeRooms(resp *Response) ([]model.RoomStatus, error) {
	var wrapper struct {
		Rooms []model.RoomStatus `json:"rooms"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode room list:\n%+v\n%s", resp.ToString(), err)
	}
	return wrapper.Rooms, nil
}

func (c *GetARoomClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	var wrapper struct {
		Booking model.Booking `json:"booking"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking:\n%+v\n%s", resp.ToString(), err)
	}
	return &wrapper.Booking, nil
}

func (c *GetARoomClient) DecodeRoomBookings(resp *Response) ([]model.Booking, error) {
	var wrapper struct {
		RoomID   string          `json:"roomId"`
		RoomName string          `json:"roomName"`
		Bookings []model.Booking `json:"bookings"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode room bookings:\n%+v\n%s", resp.ToString(), err)
	}
	return wrapper.Bookings, nil
}

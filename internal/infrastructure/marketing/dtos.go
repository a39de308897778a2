package marketing

import "encoding/json"

// ResponseCode is the upstream "code" field. The API sends it as a string on some
// endpoints and as a number on others.
type ResponseCode string

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ResponseCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ResponseCode(n.String())
	return nil
}

// SubscribeResponse is the JSON body of a listsubscribe call.
type SubscribeResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
}

// TokenResponse is the JSON body of the OAuth refresh endpoint. A 200 response may still
// carry an error instead of a token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	APIDomain   string `json:"api_domain"`
	Error       string `json:"error"`
}

type apiErrorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
}

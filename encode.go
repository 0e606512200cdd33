package gpt3

// EncodeLength is the number of placeholders returned by Encode.
const EncodeLength = 2048

// Encode is an inert placeholder kept so callers written against the
// tokenizing client still compile. It does not tokenize text and never
// touches the network: it always returns EncodeLength empty strings,
// whatever the input.
func (c *Client) Encode(text string) []string {
	return make([]string, EncodeLength)
}

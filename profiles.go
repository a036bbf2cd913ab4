// Package imagen provides profile discovery.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// GetProfiles lists the AI editing profiles available to the account.
// A profile's ProfileKey is what StartEditing and QuickEdit edit with.
//
// Returns:
//   - []imagentypes.Profile: The profiles, including Talent and personal ones
//   - error: Returns an error if the request fails
//
// Example:
//
//	profiles, err := client.GetProfiles(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, p := range profiles {
//	    fmt.Printf("%d\t%s (%s)\n", p.ProfileKey, p.ProfileName, p.ImageType)
//	}
func (c *Client) GetProfiles(ctx context.Context) ([]imagentypes.Profile, error) {
	profiles, err := c.api.GetProfiles(ctx)
	if err != nil {
		return nil, errors.NewError("getProfiles", err)
	}
	return profiles, nil
}

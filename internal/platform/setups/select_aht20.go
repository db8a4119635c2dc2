//go:build panel_aht20

package setups

func init() { Selected = PicoAHT20 }

package cmd

const bannerText = `
 _      __           __    __     __               __
| | /| / /__  ____  / /___/ /____/ /  ___ ____ ____/ /__
| |/ |/ / _ \/ __/ / / __/ / __/ _ \/ -_) __// __/  '_/
|__/|__/\___/_/   /_/\__/_/\__/_//_/\__/\__/\__/_/\_\

      Requirement logic, checked offline.
`

// Banner returns the CLI banner string.
func Banner() string {
	return bannerText
}

package models

// Platform describes the ping flag dialect of an operating system family.
type Platform struct {
	CountFlag   string // flag selecting the number of echo requests
	TimeoutFlag string // flag bounding the wait for a reply
	TimeoutInMS bool   // true when the timeout value is in milliseconds
}

// PlatformFor resolves the ping dialect for a GOOS value. Windows ping
// counts with -n and takes -w in milliseconds; everything else counts
// with -c and takes -W in whole seconds.
func PlatformFor(goos string) Platform {
	if goos == "windows" {
		return Platform{
			CountFlag:   "-n",
			TimeoutFlag: "-w",
			TimeoutInMS: true,
		}
	}
	return Platform{
		CountFlag:   "-c",
		TimeoutFlag: "-W",
		TimeoutInMS: false,
	}
}

package supervisor

import "time"

// pollUntil re-checks cond up to attempts times with a fixed sleep
// between checks. The first check happens immediately and no sleep
// follows a satisfied condition or the final check, so callers never
// wait longer than they have to. Both the readiness poll after start
// and the disappearance poll after stop run through here; it is the
// only place the supervisor blocks.
func pollUntil(attempts int, interval time.Duration, cond func() (bool, error)) (bool, error) {
	for i := 0; i < attempts; i++ {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if i < attempts-1 {
			time.Sleep(interval)
		}
	}
	return false, nil
}

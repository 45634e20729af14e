package supervisor

// Restart stops the actor, then starts a fresh instance only once the
// old one is confirmed gone. A stuck process blocks the relaunch so two
// instances never race for the actor's ports and files.
func (supervisor *Supervisor) Restart() error {
	if err := supervisor.Stop(); err != nil {
		return err
	}
	return supervisor.Start()
}

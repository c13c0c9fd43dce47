package windfarm

// InjectKeys queues synthetic key presses. One key is consumed per Tick,
// before the scene update, exactly as if it had been typed.
func (a *App) InjectKeys(keys ...rune) {
	a.keyQueue = append(a.keyQueue, keys...)
}

// PendingKeys returns the number of injected keys not yet consumed.
func (a *App) PendingKeys() int { return len(a.keyQueue) }

// processInjectedKey pops one key from the queue and feeds it through
// Keyboard. Returns true if a key was consumed.
func (a *App) processInjectedKey() bool {
	if len(a.keyQueue) == 0 {
		return false
	}
	key := a.keyQueue[0]
	copy(a.keyQueue, a.keyQueue[1:])
	a.keyQueue = a.keyQueue[:len(a.keyQueue)-1]

	a.Keyboard(key)
	return true
}

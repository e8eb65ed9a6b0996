// internal/event/types.go
package event

const (
	EnemySpawned EventType = "EnemySpawned" // Враг появился, в Data вид врага (string)
	EnemyRemoved EventType = "EnemyRemoved" // Враг убран из мира, в Data вид врага (string)
)

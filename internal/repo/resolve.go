package repo

// Unknown подставляется вместо имени, когда мягкая ссылка никуда не
// указывает.
const Unknown = "Unknown"

// Ref — результат разрешения мягкой ссылки. Found=false означает, что
// целевая запись удалена или никогда не существовала; Name в этом
// случае равен Unknown, чтобы все потребители показывали одно и то же.
type Ref struct {
	ID    string
	Name  string
	Found bool
}

// Resolver разрешает мягкие ссылки работ (судно, компонент,
// назначенный пользователь) в отображаемые имена.
type Resolver struct {
	ships      ShipRepository
	components ComponentRepository
	users      UserRepository
}

// NewResolver создаёт резолвер поверх репозиториев.
func NewResolver(ships ShipRepository, components ComponentRepository, users UserRepository) *Resolver {
	return &Resolver{ships: ships, components: components, users: users}
}

// Ship разрешает ссылку на судно.
func (r *Resolver) Ship(id string) Ref {
	ship, err := r.ships.GetByID(id)
	if err != nil || ship == nil {
		return Ref{ID: id, Name: Unknown}
	}
	return Ref{ID: id, Name: ship.Name, Found: true}
}

// Component разрешает ссылку на компонент в пределах судна.
func (r *Resolver) Component(shipID, componentID string) Ref {
	c, err := r.components.GetByID(shipID, componentID)
	if err != nil || c == nil {
		return Ref{ID: componentID, Name: Unknown}
	}
	return Ref{ID: componentID, Name: c.Name, Found: true}
}

// User разрешает ссылку на пользователя.
func (r *Resolver) User(id string) Ref {
	u, err := r.users.GetByID(id)
	if err != nil || u == nil {
		return Ref{ID: id, Name: Unknown}
	}
	return Ref{ID: id, Name: u.Name, Found: true}
}

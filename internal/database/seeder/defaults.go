package seeder

func Defaults() []Seeder {
	return []Seeder{
		SchemaSeeder{},
		CatalogSeeder{},
		RolesSeeder{},
		UsersSeeder{},
	}
}

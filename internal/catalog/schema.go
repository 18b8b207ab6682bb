package catalog

// rolesSchema validates the decoded roles.yaml document before any numbers
// reach the simulation. A catalog that fails validation is a startup error,
// never a silently-wrong constant.
const rolesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["roles"],
  "properties": {
    "roles": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "required": ["managerial", "per_star", "salary_min", "salary_max"],
        "properties": {
          "managerial": {"type": "boolean"},
          "per_star": {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "efficiency": {"type": "number", "minimum": 0},
              "sales_bonus_pct": {"type": "number", "minimum": 0},
              "tax_reduction_pct": {"type": "number", "minimum": 0},
              "expense_reduction_pct": {"type": "number", "minimum": 0},
              "reputation_bonus": {"type": "number", "minimum": 0},
              "staff_productivity_bonus": {"type": "number", "minimum": 0}
            }
          },
          "energy_cost": {"type": "number", "minimum": 0},
          "mood_effect": {"type": "number"},
          "skill_growth": {"type": "number", "minimum": 0},
          "salary_min": {"type": "integer", "minimum": 0},
          "salary_max": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

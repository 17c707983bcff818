package tools

import (
	"fmt"
	"strings"
)

// GeneratePrototype returns React source code composing Mesh components. The
// template is picked from keywords in the description; components and
// includeData tune the generic and stateful variants.
func GeneratePrototype(description string, components []string, includeData bool) string {
	desc := strings.ToLower(description)

	switch {
	case containsAny(desc, "table", "list", "data"):
		return tableComponent(includeData)
	case containsAny(desc, "form", "input", "submit"):
		return formComponent(includeData)
	case containsAny(desc, "dashboard", "summary", "overview"):
		return dashboardComponent()
	default:
		return genericComponent(description, components)
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func tableComponent(includeData bool) string {
	var dataImport, dataCode string
	if includeData {
		dataImport = "import { useState, useEffect } from 'react';\n"
		dataCode = `
  const [data, setData] = useState([]);
  const [filteredData, setFilteredData] = useState([]);
  const [filter, setFilter] = useState('');

  useEffect(() => {
    // Placeholder data - replace with actual API call
    const mockData = [
      { id: 1, name: 'John Smith', policy: 'Gold Hospital', status: 'Active', premium: 299 },
      { id: 2, name: 'Sarah Jones', policy: 'Silver Extras', status: 'Active', premium: 189 },
      { id: 3, name: 'Mike Wilson', policy: 'Bronze Combined', status: 'Suspended', premium: 159 },
    ];
    setData(mockData);
    setFilteredData(mockData);
  }, []);

  useEffect(() => {
    if (filter) {
      setFilteredData(data.filter(item =>
        item.name.toLowerCase().includes(filter.toLowerCase()) ||
        item.policy.toLowerCase().includes(filter.toLowerCase())
      ));
    } else {
      setFilteredData(data);
    }
  }, [filter, data]);`
	}

	return fmt.Sprintf(`import React from 'react';
%simport { Table, Select, Button, Input, Container } from '@nib/mesh-ds-react';

const DataTableComponent = () => {%s

  const handleFilterChange = (event) => {
    setFilter(event.target.value);
  };

  const columns = [
    { key: 'name', title: 'Name' },
    { key: 'policy', title: 'Policy Type' },
    { key: 'status', title: 'Status' },
    { key: 'premium', title: 'Premium ($)' },
  ];

  return (
    <Container>
      <div style={{ marginBottom: 16 }}>
        <Input
          placeholder="Search members..."
          value={filter}
          onChange={handleFilterChange}
        />
      </div>
      <Table
        columns={columns}
        data={filteredData}
        pagination
      />
    </Container>
  );
};

export default DataTableComponent;`, dataImport, dataCode)
}

func formComponent(includeData bool) string {
	var stateCode string
	if includeData {
		stateCode = `
  const [formData, setFormData] = useState({
    firstName: '',
    lastName: '',
    email: '',
    policyType: '',
    category: ''
  });

  const handleChange = (field, value) => {
    setFormData(prev => ({ ...prev, [field]: value }));
  };

  const handleSubmit = (event) => {
    event.preventDefault();
    console.log('Form submitted:', formData);
    // Add your submission logic here
  };`
	}

	return fmt.Sprintf(`import React, { useState } from 'react';
import { Form, FormControl, Input, Select, Button, Container } from '@nib/mesh-ds-react';

const FormComponent = () => {%s

  const policyOptions = [
    { value: 'hospital', label: 'Hospital Cover' },
    { value: 'extras', label: 'Extras Cover' },
    { value: 'combined', label: 'Hospital + Extras' }
  ];

  const categoryOptions = [
    { value: 'basic', label: 'Basic' },
    { value: 'bronze', label: 'Bronze' },
    { value: 'silver', label: 'Silver' },
    { value: 'gold', label: 'Gold' }
  ];

  return (
    <Container>
      <Form onSubmit={handleSubmit}>
        <FormControl label="First Name" required>
          <Input
            value={formData.firstName}
            onChange={(e) => handleChange('firstName', e.target.value)}
            placeholder="Enter first name"
          />
        </FormControl>

        <FormControl label="Last Name" required>
          <Input
            value={formData.lastName}
            onChange={(e) => handleChange('lastName', e.target.value)}
            placeholder="Enter last name"
          />
        </FormControl>

        <FormControl label="Email" required>
          <Input
            type="email"
            value={formData.email}
            onChange={(e) => handleChange('email', e.target.value)}
            placeholder="Enter email address"
          />
        </FormControl>

        <FormControl label="Policy Type" required>
          <Select
            options={policyOptions}
            value={formData.policyType}
            onChange={(value) => handleChange('policyType', value)}
            placeholder="Select policy type"
          />
        </FormControl>

        <FormControl label="Category">
          <Select
            options={categoryOptions}
            value={formData.category}
            onChange={(value) => handleChange('category', value)}
            placeholder="Select category"
          />
        </FormControl>

        <Button type="submit" variant="primary">
          Submit Application
        </Button>
      </Form>
    </Container>
  );
};

export default FormComponent;`, stateCode)
}

func dashboardComponent() string {
	return `import React from 'react';
import { Card, Container, Grid, Stats, Button } from '@nib/mesh-ds-react';

const DashboardComponent = () => {
  const stats = [
    { title: 'Total Members', value: '12,543', change: '+5.2%' },
    { title: 'Active Policies', value: '9,876', change: '+2.1%' },
    { title: 'Claims This Month', value: '1,234', change: '-1.5%' },
    { title: 'Revenue YTD', value: '$2.4M', change: '+8.7%' }
  ];

  return (
    <Container>
      <Grid columns={4} gap="medium">
        {stats.map((stat, index) => (
          <Card key={index}>
            <Stats
              title={stat.title}
              value={stat.value}
              change={stat.change}
            />
          </Card>
        ))}
      </Grid>

      <Grid columns={2} gap="large" style={{ marginTop: 24 }}>
        <Card>
          <h3>Recent Claims</h3>
          <p>Claims processing summary and recent activity</p>
          <Button variant="secondary">View All Claims</Button>
        </Card>

        <Card>
          <h3>Member Activity</h3>
          <p>Member engagement and policy updates</p>
          <Button variant="secondary">View Member Reports</Button>
        </Card>
      </Grid>
    </Container>
  );
};

export default DashboardComponent;`
}

func genericComponent(description string, components []string) string {
	imports := "Container, Card, Button"
	if len(components) > 0 {
		imports = strings.Join(components, ", ")
	}

	return fmt.Sprintf(`import React from 'react';
import { %s } from '@nib/mesh-ds-react';

const CustomComponent = () => {
  // Component for: %s

  return (
    <Container>
      <Card>
        <h2>Custom Component</h2>
        <p>Generated component for: %s</p>
        <Button variant="primary">Action Button</Button>
      </Card>
    </Container>
  );
};

export default CustomComponent;`, imports, description, description)
}
